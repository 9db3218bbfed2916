package wealth

import (
	"errors"
	"fmt"
	"strings"
)

// ValueIn is a currency perspective: the currency frame in which a position's
// monetary fields are expressed.
type ValueIn int

const (
	// Portfolio expresses values in the portfolio's reporting currency.
	Portfolio ValueIn = iota
	// Base expresses values in the portfolio's base currency.
	Base
	// Trade expresses values in the currency the asset was traded in.
	Trade
)

// AllValuesIn lists every currency perspective.
var AllValuesIn = []ValueIn{Portfolio, Base, Trade}

// ErrUnknownValueIn is returned when parsing an unknown currency perspective.
var ErrUnknownValueIn = errors.New("unknown currency perspective")

func (v ValueIn) String() string {
	switch v {
	case Portfolio:
		return "PORTFOLIO"
	case Base:
		return "BASE"
	case Trade:
		return "TRADE"
	default:
		return "unknown"
	}
}

// ParseValueIn parses a currency perspective, case insensitive.
func ParseValueIn(s string) (ValueIn, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PORTFOLIO":
		return Portfolio, nil
	case "BASE":
		return Base, nil
	case "TRADE":
		return Trade, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownValueIn, s)
	}
}

// MarshalText makes ValueIn usable as a json map key.
func (v ValueIn) MarshalText() ([]byte, error) {
	if v < Portfolio || v > Trade {
		return nil, fmt.Errorf("%w: %d", ErrUnknownValueIn, int(v))
	}
	return []byte(v.String()), nil
}

func (v *ValueIn) UnmarshalText(b []byte) error {
	p, err := ParseValueIn(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
