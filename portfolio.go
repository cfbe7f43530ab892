package stocks

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Errors surfaced by portfolio operations. They are recovered at the CLI
// boundary and reported to the user; none is fatal.
var (
	// ErrInsufficientShares is returned by Sell when the position as of the
	// trade's timestamp cannot cover the quantity. Selling a never-traded
	// symbol is the same error: a symbol with no history holds zero shares.
	ErrInsufficientShares = errors.New("not enough shares to sell")
	// ErrInvalidSplitRatio is returned by Split for non-positive ratios.
	ErrInvalidSplitRatio = errors.New("split ratio must be positive")
	// ErrInvalidTrade is returned by Buy and Sell for non-positive
	// quantities or negative prices.
	ErrInvalidTrade = errors.New("invalid trade")
)

// Portfolio owns one TradeHistory per security, keyed by canonical symbol.
//
// A ledger is created on the first buy and kept even after its quantity
// drops to zero, so historical queries and profit aggregation stay correct
// after a position is closed and later reopened.
//
// A Portfolio is owned by a single caller at a time (load, mutate, persist);
// it performs no synchronization of its own.
type Portfolio struct {
	stocks map[string]*TradeHistory
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{stocks: make(map[string]*TradeHistory)}
}

// canonical maps a user-supplied symbol to its case-insensitive ledger key.
func canonical(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Stock returns the ledger for a symbol, or nil if it was never traded.
func (p *Portfolio) Stock(symbol string) *TradeHistory {
	return p.stocks[canonical(symbol)]
}

// Stocks iterates the ledgers in symbol order.
func (p *Portfolio) Stocks() iter.Seq[*TradeHistory] {
	return func(yield func(*TradeHistory) bool) {
		symbols := slices.Collect(maps.Keys(p.stocks))
		slices.Sort(symbols)
		for _, symbol := range symbols {
			if !yield(p.stocks[symbol]) {
				return
			}
		}
	}
}

// history returns the ledger for a symbol, creating it on first use.
func (p *Portfolio) history(symbol string) *TradeHistory {
	key := canonical(symbol)
	h, ok := p.stocks[key]
	if !ok {
		h = NewTradeHistory(key)
		p.stocks[key] = h
	}
	return h
}

// Buy records a purchase. Buying is always valid for a positive quantity
// and a non-negative price; the ledger is created on the first trade.
func (p *Portfolio) Buy(symbol string, quantity Quantity, price Money, datetime Datetime) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: buy quantity must be positive, got %s", ErrInvalidTrade, quantity)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: buy price cannot be negative, got %s", ErrInvalidTrade, price)
	}
	p.history(symbol).Append(NewBuy(quantity, price, datetime))
	return nil
}

// Sell records a sale and returns the realized profit,
// (price - average cost) x quantity, with the cost basis taken immediately
// before this sell. On any error the ledger is left unmodified.
//
// The profit is returned for display only; it is never stored, being always
// re-derivable by replay.
func (p *Portfolio) Sell(symbol string, quantity Quantity, price Money, datetime Datetime) (Money, error) {
	if !quantity.IsPositive() {
		return M(0), fmt.Errorf("%w: sell quantity must be positive, got %s", ErrInvalidTrade, quantity)
	}
	if price.IsNegative() {
		return M(0), fmt.Errorf("%w: sell price cannot be negative, got %s", ErrInvalidTrade, price)
	}

	h := p.Stock(symbol)
	if h == nil {
		return M(0), fmt.Errorf("%w: no %s in portfolio", ErrInsufficientShares, canonical(symbol))
	}
	if h.QuantityAsOf(datetime).LessThan(quantity) {
		return M(0), fmt.Errorf("%w: cannot sell %s %s on %s, position is %s",
			ErrInsufficientShares, quantity, h.Symbol, datetime, h.QuantityAsOf(datetime))
	}

	profit := price.Sub(h.AverageCostAsOf(datetime)).Mul(quantity)
	h.Append(NewSell(quantity, price, datetime))
	return profit, nil
}

// Split records a stock split effective at the given instant. A ratio above
// one is a forward split (more shares, lower price); below one, a reverse
// split. Matching Buy's leniency, the ledger is created if absent, which
// makes the operation a no-op until a trade predates the split.
func (p *Portfolio) Split(symbol string, ratio Quantity, datetime Datetime) error {
	if !ratio.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidSplitRatio, ratio)
	}
	p.history(symbol).ApplySplit(ratio, datetime)
	return nil
}

// ProfitByMonth sums every ledger's realized profit and proceeds per
// calendar month of the given year. Index 0 is January.
func (p *Portfolio) ProfitByMonth(year int) [12]MonthSummary {
	var months [12]MonthSummary
	for h := range p.Stocks() {
		for m, summary := range h.ProfitByMonth(year) {
			months[m] = months[m].add(summary)
		}
	}
	return months
}
