package wealth

import (
	"github.com/shopspring/decimal"
)

// number lists the native types that can be turned into a decimal.Decimal.
type number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// D is a convenient factory for decimal.Decimal amounts.
func D[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a number of units of an asset.
type Quantity struct {
	value decimal.Decimal
}

// Q returns a Quantity of value units.
func Q[T number](value T) Quantity {
	return Quantity{value: D(value)}
}

func (q Quantity) Decimal() decimal.Decimal      { return q.value }
func (q Quantity) Equal(p Quantity) bool         { return q.value.Equal(p.value) }
func (q Quantity) Cmp(p Quantity) int            { return q.value.Cmp(p.value) }
func (q Quantity) Add(p Quantity) Quantity       { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity       { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsZero() bool                  { return q.value.IsZero() }
func (q Quantity) IsPositive() bool              { return q.value.IsPositive() }
func (q Quantity) String() string                { return q.value.String() }
func (q Quantity) StringFixed(places int) string { return q.value.StringFixed(int32(places)) }

// MarshalJSON writes the quantity as a json number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.value.String()), nil
}

// UnmarshalJSON reads a quantity from a json number or a quoted number.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	return q.value.UnmarshalJSON(b)
}
