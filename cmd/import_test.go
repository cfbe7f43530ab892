package cmd

import (
	"testing"
	"time"

	"github.com/gmello/stocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayTrade(t *testing.T) {
	p := stocks.NewPortfolio()

	require.NoError(t, replayTrade(p, "PETR4;2024-01-10 12:30:00;buy;100;10.50"))
	require.NoError(t, replayTrade(p, "PETR4;2024-02-10 12:30:00;sell;40;12.00"))
	// A date-only record lands at the end of its day.
	require.NoError(t, replayTrade(p, "vale3;2024-01-15;BUY;10;60"))

	asOf := stocks.NewDatetime(2024, time.December, 31, 0, 0, 0)
	assert.True(t, p.Stock("PETR4").QuantityAsOf(asOf).Equal(stocks.Q(60)))
	assert.True(t, p.Stock("VALE3").QuantityAsOf(asOf).Equal(stocks.Q(10)))
}

func TestReplayTrade_Invalid(t *testing.T) {
	p := stocks.NewPortfolio()

	tests := []struct {
		name   string
		record string
	}{
		{"too few fields", "PETR4;2024-01-10 12:30:00;buy;100"},
		{"unknown kind", "PETR4;2024-01-10 12:30:00;dividend;100;10.50"},
		{"bad date", "PETR4;10/01/2024;buy;100;10.50"},
		{"bad quantity", "PETR4;2024-01-10 12:30:00;buy;ten;10.50"},
		{"bad price", "PETR4;2024-01-10 12:30:00;buy;100;R$10"},
		{"sell before any buy", "PETR4;2024-01-10 12:30:00;sell;100;10.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, replayTrade(p, tt.record))
		})
	}
	assert.Nil(t, p.Stock("PETR4"), "no rejected record may touch the portfolio")
}

func TestParseTradeArgs(t *testing.T) {
	symbol, quantity, price, datetime, err := parseTradeArgs([]string{"petr4", "100", "10.50", "2024-01-10 12:30:00"})
	require.NoError(t, err)
	assert.Equal(t, "petr4", symbol)
	assert.True(t, quantity.Equal(stocks.Q(100)))
	assert.True(t, price.Equal(stocks.M(10.5)))
	assert.True(t, datetime.Equal(stocks.NewDatetime(2024, time.January, 10, 12, 30, 0)))

	// The datetime is optional and defaults to now.
	_, _, _, datetime, err = parseTradeArgs([]string{"petr4", "100", "10.50"})
	require.NoError(t, err)
	assert.False(t, datetime.IsZero())

	for _, args := range [][]string{
		{"petr4", "100"},
		{"petr4", "100", "10.50", "2024-01-10 12:30:00", "extra"},
		{"petr4", "0", "10.50"},
		{"petr4", "-5", "10.50"},
		{"petr4", "100abc", "10.50"},
		{"petr4", "100", "ten"},
		{"petr4", "100", "10.50", "2024-01-10"},
	} {
		_, _, _, _, err := parseTradeArgs(args)
		assert.Error(t, err, "args %v", args)
	}
}
