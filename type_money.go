package stocks

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the currency every amount in a portfolio is denominated in.
// Trades, quotes and the tax rule all assume Brazilian reais.
const Currency = money.BRL

// Money represents a monetary value: a unit price, a cost basis or a profit.
type Money struct {
	value decimal.Decimal
}

func M[T float64 | int | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string like "10.50" into a Money.
func ParseMoney(str string) (Money, error) {
	v, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money           { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money        { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money        { return Money{value: m.value.Div(q.value)} }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool    { return m.value.GreaterThan(n.value) }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsPositive() bool            { return m.value.IsPositive() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }

// InexactFloat64 returns the nearest float64. Display only.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }

// String formats the amount as reais, e.g. "R$1,234.57".
func (m Money) String() string {
	cur := money.GetCurrency(Currency)
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), Currency).Display()
}

// SignedString formats like String with an explicit sign; zero is "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON implements json.Marshaler as a bare number, the wire format
// of trade prices.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
