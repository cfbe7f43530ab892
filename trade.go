package stocks

import (
	"encoding/json"
	"fmt"
)

// TradeKind identifies the two ownership-changing trade variants.
type TradeKind string

const (
	KindBuy  TradeKind = "Buy"
	KindSell TradeKind = "Sell"
)

// ParseTradeKind parses a string into a TradeKind.
func ParseTradeKind(s string) (TradeKind, error) {
	switch TradeKind(s) {
	case KindBuy:
		return KindBuy, nil
	case KindSell:
		return KindSell, nil
	default:
		return "", fmt.Errorf("unknown trade kind: %q", s)
	}
}

// SplitAdjustment is a retroactive multiplier attached to a trade that
// occurred before a stock split. It scales the trade's quantity (and divides
// its price) for every query dated after the split.
type SplitAdjustment struct {
	Ratio    Quantity `json:"ratio"`
	Datetime Datetime `json:"datetime"`
}

// MarshalJSON implements json.Marshaler with a stable field order.
func (s SplitAdjustment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ratio", s.Ratio)
	w.Append("datetime", s.Datetime)
	return w.MarshalJSON()
}

// Trade is a single immutable buy or sell event. Splits recorded after the
// trade are appended to Splits; the original quantity and price are never
// rewritten, so the full event history stays auditable.
type Trade struct {
	Quantity Quantity          `json:"quantity"`
	Price    Money             `json:"price"`
	Datetime Datetime          `json:"datetime"`
	Kind     TradeKind         `json:"kind"`
	Splits   []SplitAdjustment `json:"splits,omitempty"`
}

// NewBuy creates a buy trade.
func NewBuy(quantity Quantity, price Money, datetime Datetime) Trade {
	return Trade{Quantity: quantity, Price: price, Datetime: datetime, Kind: KindBuy}
}

// NewSell creates a sell trade.
func NewSell(quantity Quantity, price Money, datetime Datetime) Trade {
	return Trade{Quantity: quantity, Price: price, Datetime: datetime, Kind: KindSell}
}

// splitFactor is the product of the ratios of every adjustment dated
// strictly before asOf. Splits compose multiplicatively, so the factor is
// independent of the order adjustments were recorded in.
func (t Trade) splitFactor(asOf Datetime) Quantity {
	factor := Q(1)
	for _, adj := range t.Splits {
		if adj.Datetime.Before(asOf) {
			factor = factor.Mul(adj.Ratio)
		}
	}
	return factor
}

// EffectiveQuantity returns the trade's quantity adjusted for every split
// that took effect before asOf.
func (t Trade) EffectiveQuantity(asOf Datetime) Quantity {
	return t.Quantity.Mul(t.splitFactor(asOf))
}

// EffectivePrice returns the trade's unit price adjusted for every split
// that took effect before asOf.
func (t Trade) EffectivePrice(asOf Datetime) Money {
	return t.Price.Div(t.splitFactor(asOf))
}

// MarshalJSON implements json.Marshaler with a stable field order, so that
// encoding a decoded portfolio reproduces the input byte for byte.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Append("datetime", t.Datetime)
	w.Append("kind", t.Kind)
	if len(t.Splits) > 0 {
		w.Append("splits", t.Splits)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler. It rejects unknown trade kinds
// and non-positive quantities, the insertion-time invariants of a ledger.
func (t *Trade) UnmarshalJSON(data []byte) error {
	type trade Trade // shed methods to avoid recursion
	var temp trade
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if _, err := ParseTradeKind(string(temp.Kind)); err != nil {
		return err
	}
	if !temp.Quantity.IsPositive() {
		return fmt.Errorf("trade quantity must be positive, got %s", temp.Quantity)
	}
	*t = Trade(temp)
	return nil
}
