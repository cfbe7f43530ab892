package stocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolio_BuyAndSell(t *testing.T) {
	p := NewPortfolio()
	require.NoError(t, p.Buy("PETR4", Q(100), M(10), at(2024, time.January, 10)))

	profit, err := p.Sell("PETR4", Q(50), M(12), at(2024, time.February, 10))
	require.NoError(t, err)
	// (12 - 10) x 50
	assert.True(t, profit.Equal(M(100)), "profit = %s, want %s", profit, M(100))

	h := p.Stock("PETR4")
	require.NotNil(t, h)
	assert.True(t, h.QuantityAsOf(endOf(2024, time.February, 10)).Equal(Q(50)))
}

func TestPortfolio_Buy_Validation(t *testing.T) {
	p := NewPortfolio()
	assert.ErrorIs(t, p.Buy("PETR4", Q(0), M(10), Now()), ErrInvalidTrade)
	assert.ErrorIs(t, p.Buy("PETR4", Q(10), M(-1), Now()), ErrInvalidTrade)
	assert.Nil(t, p.Stock("PETR4"), "a rejected buy must not create a ledger")
}

func TestPortfolio_Sell_InsufficientShares(t *testing.T) {
	p := NewPortfolio()
	require.NoError(t, p.Buy("PETR4", Q(100), M(10), at(2024, time.January, 10)))

	_, err := p.Sell("PETR4", Q(150), M(12), at(2024, time.February, 10))
	assert.ErrorIs(t, err, ErrInsufficientShares)

	// The rejected sell leaves the ledger unmodified.
	assert.Len(t, p.Stock("PETR4").Trades, 1)
}

func TestPortfolio_Sell_UnknownSymbol(t *testing.T) {
	p := NewPortfolio()
	_, err := p.Sell("XXXX3", Q(10), M(12), Now())
	assert.ErrorIs(t, err, ErrInsufficientShares)
}

func TestPortfolio_Sell_SharesNotYetBought(t *testing.T) {
	// The position is checked as of the sell's timestamp, not as of now.
	p := NewPortfolio()
	require.NoError(t, p.Buy("PETR4", Q(100), M(10), at(2024, time.March, 10)))

	_, err := p.Sell("PETR4", Q(10), M(12), at(2024, time.January, 10))
	assert.ErrorIs(t, err, ErrInsufficientShares)
}

func TestPortfolio_SymbolCanonicalization(t *testing.T) {
	p := NewPortfolio()
	require.NoError(t, p.Buy(" petr4 ", Q(100), M(10), at(2024, time.January, 10)))

	require.NotNil(t, p.Stock("PETR4"))
	assert.Equal(t, "PETR4", p.Stock("petr4").Symbol)

	_, err := p.Sell("Petr4", Q(50), M(12), at(2024, time.February, 10))
	assert.NoError(t, err)
}

func TestPortfolio_Split_Validation(t *testing.T) {
	p := NewPortfolio()
	assert.ErrorIs(t, p.Split("PETR4", Q(0), Now()), ErrInvalidSplitRatio)
	assert.ErrorIs(t, p.Split("PETR4", Q(-2), Now()), ErrInvalidSplitRatio)
	assert.NoError(t, p.Split("PETR4", Q(2), Now()))
}

func TestPortfolio_Split_EnablesLargerSell(t *testing.T) {
	p := NewPortfolio()
	require.NoError(t, p.Buy("PETR4", Q(100), M(10), at(2024, time.January, 10)))
	require.NoError(t, p.Split("PETR4", Q(2), endOf(2024, time.June, 1)))

	// 200 post-split shares are sellable even though only 100 were bought.
	profit, err := p.Sell("PETR4", Q(200), M(8), at(2024, time.July, 10))
	require.NoError(t, err)
	// (8 - 5) x 200
	assert.True(t, profit.Equal(M(600)), "profit = %s, want %s", profit, M(600))
}

func TestPortfolio_LedgerSurvivesFullClose(t *testing.T) {
	p := NewPortfolio()
	require.NoError(t, p.Buy("PETR4", Q(100), M(10), at(2024, time.January, 10)))
	_, err := p.Sell("PETR4", Q(100), M(20), at(2024, time.February, 10))
	require.NoError(t, err)

	require.NotNil(t, p.Stock("PETR4"), "closed positions keep their history")
	assert.False(t, p.ProfitByMonth(2024)[1].Profit.IsZero())
}

func TestPortfolio_Stocks_SortedBySymbol(t *testing.T) {
	p := NewPortfolio()
	require.NoError(t, p.Buy("VALE3", Q(10), M(60), Now()))
	require.NoError(t, p.Buy("ITSA4", Q(10), M(8), Now()))
	require.NoError(t, p.Buy("PETR4", Q(10), M(10), Now()))

	var symbols []string
	for h := range p.Stocks() {
		symbols = append(symbols, h.Symbol)
	}
	assert.Equal(t, []string{"ITSA4", "PETR4", "VALE3"}, symbols)
}

func TestPortfolio_ProfitByMonth_InsertionOrderIndependent(t *testing.T) {
	// Backfilled buys recorded in any order yield the same monthly result.
	build := func(reversed bool) *Portfolio {
		p := NewPortfolio()
		buys := []struct {
			quantity Quantity
			price    Money
			datetime Datetime
		}{
			{Q(100), M(10), at(2024, time.January, 10)},
			{Q(200), M(15), at(2024, time.February, 10)},
		}
		if reversed {
			buys[0], buys[1] = buys[1], buys[0]
		}
		for _, b := range buys {
			require.NoError(t, p.Buy("PETR4", b.quantity, b.price, b.datetime))
		}
		_, err := p.Sell("PETR4", Q(200), M(20), at(2024, time.March, 10))
		require.NoError(t, err)
		return p
	}

	forward := build(false).ProfitByMonth(2024)
	backward := build(true).ProfitByMonth(2024)
	for m := range forward {
		assert.True(t, forward[m].Profit.Equal(backward[m].Profit), "month %d profit differs", m+1)
		assert.True(t, forward[m].Proceeds.Equal(backward[m].Proceeds), "month %d proceeds differs", m+1)
	}
}

func TestPortfolio_ProfitByMonth_SumsAcrossSymbols(t *testing.T) {
	p := NewPortfolio()
	require.NoError(t, p.Buy("PETR4", Q(100), M(10), at(2024, time.January, 10)))
	require.NoError(t, p.Buy("VALE3", Q(100), M(50), at(2024, time.January, 10)))

	_, err := p.Sell("PETR4", Q(100), M(15), at(2024, time.March, 10)) // +500
	require.NoError(t, err)
	_, err = p.Sell("VALE3", Q(100), M(48), at(2024, time.March, 10)) // -200
	require.NoError(t, err)

	march := p.ProfitByMonth(2024)[2]
	assert.True(t, march.Profit.Equal(M(300)), "profit = %s, want %s", march.Profit, M(300))
	assert.True(t, march.Proceeds.Equal(M(6300)), "proceeds = %s, want %s", march.Proceeds, M(6300))
}
