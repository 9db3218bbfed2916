package wealth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage, 12.5 means 12.5%.
type Percent float64

// percentOf returns part/total as a Percent, 0 when total is zero.
func percentOf(part, total decimal.Decimal) Percent {
	if total.IsZero() {
		return 0
	}
	return Percent(part.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// Ratio returns a fraction (0.1 = 10%) as a Percent.
func Ratio(f decimal.Decimal) Percent {
	return Percent(f.Mul(decimal.NewFromInt(100)).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
