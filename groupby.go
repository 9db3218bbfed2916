package wealth

import (
	"errors"
	"fmt"
	"strings"
)

// UndefinedKey is the group key of positions whose grouping field is missing.
const UndefinedKey = "undefined"

// GroupBy selects the axis positions are grouped on.
type GroupBy int

const (
	// ByCategory groups on asset.assetCategory.name.
	ByCategory GroupBy = iota
	// ByMarket groups on asset.market.code.
	ByMarket
	// ByMarketCurrency groups on asset.market.currency.code.
	ByMarketCurrency
	// BySector groups on asset.sector.
	BySector
	// ByAsset groups on asset.code, one group per asset.
	ByAsset
)

// AllGroupBy lists every grouping axis.
var AllGroupBy = []GroupBy{ByCategory, ByMarket, ByMarketCurrency, BySector, ByAsset}

// ErrUnknownGroupBy is returned when parsing an unknown grouping axis.
var ErrUnknownGroupBy = errors.New("unknown grouping")

// String returns the short name of the axis.
func (g GroupBy) String() string {
	switch g {
	case ByCategory:
		return "category"
	case ByMarket:
		return "market"
	case ByMarketCurrency:
		return "currency"
	case BySector:
		return "sector"
	case ByAsset:
		return "asset"
	default:
		return "unknown"
	}
}

// Path returns the property path of the axis in the position feed.
func (g GroupBy) Path() string {
	switch g {
	case ByCategory:
		return "asset.assetCategory.name"
	case ByMarket:
		return "asset.market.code"
	case ByMarketCurrency:
		return "asset.market.currency.code"
	case BySector:
		return "asset.sector"
	case ByAsset:
		return "asset.code"
	default:
		return ""
	}
}

// ParseGroupBy parses a grouping axis from its short name or its property path.
func ParseGroupBy(s string) (GroupBy, error) {
	s = strings.TrimSpace(s)
	for _, g := range AllGroupBy {
		if strings.EqualFold(s, g.String()) || s == g.Path() {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroupBy, s)
}

// field returns the raw value of the axis for p.
func (g GroupBy) field(p Position) string {
	a := p.Asset
	switch g {
	case ByCategory:
		return a.AssetCategory.Name
	case ByMarket:
		return a.Market.Code
	case ByMarketCurrency:
		return a.Market.Currency.Code
	case BySector:
		return a.Sector
	case ByAsset:
		return a.Code
	default:
		return ""
	}
}

// Key returns the group key of p. A missing field resolves to UndefinedKey.
func (g GroupBy) Key(p Position) string {
	if k := g.field(p); k != "" {
		return k
	}
	return UndefinedKey
}

// Label returns a human name for the group of p.
func (g GroupBy) Label(p Position) string {
	if g == ByAsset && p.Asset.Code != "" {
		return p.Asset.DisplayName()
	}
	return g.Key(p)
}

func (g GroupBy) MarshalText() ([]byte, error) {
	if g < ByCategory || g > ByAsset {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGroupBy, int(g))
	}
	return []byte(g.String()), nil
}

func (g *GroupBy) UnmarshalText(b []byte) error {
	p, err := ParseGroupBy(string(b))
	if err != nil {
		return err
	}
	*g = p
	return nil
}
