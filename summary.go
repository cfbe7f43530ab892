package stocks

// StockSummary is the point-in-time valuation of one position, combining
// the ledger's reconstructed state with a quote supplied by the caller.
// The core does not fetch or validate quotes; it only prices what it holds.
type StockSummary struct {
	Symbol       string
	Quantity     Quantity
	Price        Money // current unit price, from the quote
	Value        Money // Price x Quantity
	Change       Money // day change: Value - LastValue
	AveragePrice Money
	Profit       Money // unrealized: Value - Cost
	LastValue    Money // previous close x Quantity
	Cost         Money // AveragePrice x Quantity
}

// NewStockSummary values a ledger as of a reference datetime at the given
// current and previous-close prices.
func NewStockSummary(h *TradeHistory, asOf Datetime, price, previousClose Money) StockSummary {
	quantity := h.QuantityAsOf(asOf)
	average := h.AverageCostAsOf(asOf)

	value := price.Mul(quantity)
	lastValue := previousClose.Mul(quantity)
	cost := average.Mul(quantity)

	return StockSummary{
		Symbol:       h.Symbol,
		Quantity:     quantity,
		Price:        price,
		Value:        value,
		Change:       value.Sub(lastValue),
		AveragePrice: average,
		Profit:       value.Sub(cost),
		LastValue:    lastValue,
		Cost:         cost,
	}
}

// ChangePercent is the day change relative to the previous close, in
// percent. Zero when the previous value is zero.
func (s StockSummary) ChangePercent() float64 {
	return ratioPercent(s.Change, s.LastValue)
}

// ProfitPercent is the unrealized profit relative to the original cost, in
// percent. Zero when the cost is zero.
func (s StockSummary) ProfitPercent() float64 {
	return ratioPercent(s.Profit, s.Cost)
}

// ratioPercent computes num/den as a percentage, display precision only.
func ratioPercent(num, den Money) float64 {
	if den.IsZero() {
		return 0
	}
	return num.InexactFloat64() / den.InexactFloat64() * 100
}
