package wealth

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency, used to present aggregated values.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as Money in the currency code.
func M[T number](value T, currency string) Money {
	return Money{value: D(value), cur: currency}
}

// currency returns the money's currency metadata. It is never nil: unknown
// codes get a default formatting.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. "$1,000.00".
// Money without a currency is printed as a plain number.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string            { return m.cur }
func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsPositive() bool            { return m.value.IsPositive() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) Mul(r decimal.Decimal) Money { return Money{value: m.value.Mul(r), cur: m.cur} }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the money as an object with its currency and amount.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	places := int32(2)
	if m.cur != "" {
		places = int32(m.currency().Fraction)
	}
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(places))
	return w.MarshalJSON()
}
