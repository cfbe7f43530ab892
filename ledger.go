package stocks

import (
	"encoding/json"
	"fmt"
	"sort"
)

// TradeHistory is the ledger of one security: the append-only, time-ordered
// list of its buy and sell trades.
//
// A TradeHistory stores no running quantity or average price. Both are
// derived by replaying the trade sequence up to a cutoff, which rules out
// stale cached aggregates at the cost of an O(n) scan per query. Ledgers
// are one portfolio's trades for one symbol, so n stays small.
type TradeHistory struct {
	Symbol string  `json:"symbol"`
	Trades []Trade `json:"trades"`
}

// NewTradeHistory creates an empty ledger for a symbol.
func NewTradeHistory(symbol string) *TradeHistory {
	return &TradeHistory{Symbol: symbol, Trades: make([]Trade, 0)}
}

// Append adds a trade and restores chronological order. The sort is stable:
// trades with the same timestamp keep their insertion order, so replays are
// deterministic even when historical data is backfilled out of order.
func (h *TradeHistory) Append(t Trade) {
	h.Trades = append(h.Trades, t)
	h.stableSort()
}

func (h *TradeHistory) stableSort() {
	sort.SliceStable(h.Trades, func(i, j int) bool {
		return h.Trades[i].Datetime.Before(h.Trades[j].Datetime)
	})
}

// QuantityAsOf reconstructs the held quantity immediately before asOf by
// replaying every trade strictly older than asOf, split-adjusted for asOf.
//
// A negative reconstruction means a sell exceeding holdings was accepted at
// insertion time; that is a ledger corruption, not a recoverable condition,
// and it panics.
func (h *TradeHistory) QuantityAsOf(asOf Datetime) Quantity {
	quantity := Q(0)
	for _, t := range h.Trades {
		if !t.Datetime.Before(asOf) {
			break
		}
		switch t.Kind {
		case KindBuy:
			quantity = quantity.Add(t.EffectiveQuantity(asOf))
		case KindSell:
			quantity = quantity.Sub(t.EffectiveQuantity(asOf))
		}
	}
	if quantity.IsNegative() {
		panic(fmt.Sprintf("ledger %s: negative quantity %s as of %s, sell-side validation was bypassed", h.Symbol, quantity, asOf))
	}
	return quantity
}

// AverageCostAsOf reconstructs the average cost basis immediately before
// asOf. Each buy folds into a quantity-weighted running average; each sell
// reduces the quantity without touching the average. When a position is
// fully closed the average resets to zero: a closed position carries no
// cost basis, so reopening it starts a fresh average.
func (h *TradeHistory) AverageCostAsOf(asOf Datetime) Money {
	quantity := Q(0)
	average := M(0)
	for _, t := range h.Trades {
		if !t.Datetime.Before(asOf) {
			break
		}
		effQty := t.EffectiveQuantity(asOf)
		switch t.Kind {
		case KindBuy:
			total := average.Mul(quantity).Add(t.EffectivePrice(asOf).Mul(effQty))
			quantity = quantity.Add(effQty)
			average = total.Div(quantity)
		case KindSell:
			quantity = quantity.Sub(effQty)
			if quantity.IsZero() {
				average = M(0)
			}
		}
	}
	if quantity.IsNegative() {
		panic(fmt.Sprintf("ledger %s: negative quantity %s as of %s, sell-side validation was bypassed", h.Symbol, quantity, asOf))
	}
	return average
}

// ApplySplit records a stock split effective at the given instant by
// appending an adjustment to every trade older than it. Trades dated at or
// after the split are untouched: their quantities are already expressed in
// post-split shares.
func (h *TradeHistory) ApplySplit(ratio Quantity, at Datetime) {
	for i := range h.Trades {
		if h.Trades[i].Datetime.Before(at) {
			h.Trades[i].Splits = append(h.Trades[i].Splits, SplitAdjustment{Ratio: ratio, Datetime: at})
		}
	}
}

// ProfitByMonth aggregates this ledger's realized profit and sale proceeds
// per calendar month of the given year. Index 0 is January.
//
// Proceeds and profit of each sell are split-adjusted as of the trade's own
// timestamp, and the cost basis is the average immediately before the sell,
// so the result is a pure function of the trade sequence: replaying the
// same (timestamp, quantity, price) triples in any insertion order yields
// the same summary.
func (h *TradeHistory) ProfitByMonth(year int) [12]MonthSummary {
	var months [12]MonthSummary
	for _, t := range h.Trades {
		if t.Kind != KindSell || t.Datetime.Year() != year {
			continue
		}
		effQty := t.EffectiveQuantity(t.Datetime)
		effPrice := t.EffectivePrice(t.Datetime)
		cost := h.AverageCostAsOf(t.Datetime)

		m := int(t.Datetime.Month()) - 1
		months[m].Proceeds = months[m].Proceeds.Add(effPrice.Mul(effQty))
		months[m].Profit = months[m].Profit.Add(effPrice.Sub(cost).Mul(effQty))
	}
	return months
}

// MarshalJSON implements json.Marshaler with a stable field order.
func (h TradeHistory) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", h.Symbol)
	w.Append("trades", h.Trades)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler and restores chronological
// order, so a hand-edited file cannot break the replay invariant.
func (h *TradeHistory) UnmarshalJSON(data []byte) error {
	type history TradeHistory
	var temp history
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*h = TradeHistory(temp)
	h.stableSort()
	return nil
}
