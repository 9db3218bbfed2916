package wealth

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey selects the field positions are ordered by.
type SortKey int

const (
	// SortNone leaves positions in feed order.
	SortNone SortKey = iota
	SortByAssetCode
	SortByAssetName
	SortByPrice
	SortByChangePercent
	SortByMarketValue
	SortByCostValue
	SortByGainOnDay
	SortByUnrealisedGain
	SortByRealisedGain
	SortByTotalGain
	SortByDividends
	SortByIRR
	SortByROI
	SortByWeight
	SortByQuantity
)

var sortKeyNames = []string{
	SortNone:             "",
	SortByAssetCode:      "code",
	SortByAssetName:      "name",
	SortByPrice:          "price",
	SortByChangePercent:  "changePercent",
	SortByMarketValue:    "marketValue",
	SortByCostValue:      "costValue",
	SortByGainOnDay:      "gainOnDay",
	SortByUnrealisedGain: "unrealisedGain",
	SortByRealisedGain:   "realisedGain",
	SortByTotalGain:      "totalGain",
	SortByDividends:      "dividends",
	SortByIRR:            "irr",
	SortByROI:            "roi",
	SortByWeight:         "weight",
	SortByQuantity:       "quantity",
}

// SortKeys lists the names accepted by ParseSortKey.
func SortKeys() []string { return slices.Clone(sortKeyNames[1:]) }

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortKeyNames) {
		return sortKeyNames[SortByAssetCode]
	}
	return sortKeyNames[k]
}

// ParseSortKey parses a sort key name, case insensitive. The empty string is
// SortNone, and any unknown name falls back to the asset code ordering.
func ParseSortKey(s string) SortKey {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortNone
	}
	for i, name := range sortKeyNames {
		if strings.EqualFold(s, name) {
			return SortKey(i)
		}
	}
	return SortByAssetCode
}

// Direction is the sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection parses "asc", "ascending", "desc" or "descending".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return 0, fmt.Errorf("unknown sort direction %q", s)
	}
}

// SortConfig selects how positions are ordered.
type SortConfig struct {
	Key       SortKey
	Direction Direction
}

// SortPositions returns g with its positions ordered by cfg, reading money
// fields in the perspective v.
//
// Cash related positions always come after the others, whatever the key or
// the direction. The sort is stable. With SortNone, g is returned unchanged.
func SortPositions(g HoldingGroup, cfg SortConfig, v ValueIn) HoldingGroup {
	if cfg.Key == SortNone {
		return g
	}
	positions := slices.Clone(g.Positions)
	slices.SortStableFunc(positions, func(a, b Position) int {
		if ac, bc := a.Asset.IsCashRelated(), b.Asset.IsCashRelated(); ac != bc {
			if ac {
				return 1
			}
			return -1
		}
		c := compareBy(cfg.Key, v, a, b)
		if cfg.Direction == Descending {
			return -c
		}
		return c
	})
	g.Positions = positions
	return g
}

func compareBy(key SortKey, v ValueIn, a, b Position) int {
	switch key {
	case SortByAssetName:
		return strings.Compare(strings.ToLower(a.Asset.DisplayName()), strings.ToLower(b.Asset.DisplayName()))
	case SortByQuantity:
		return a.QuantityValues.Total.Cmp(b.QuantityValues.Total)
	}
	if field := moneyField(key); field != nil {
		return field(a.In(v)).Cmp(field(b.In(v)))
	}
	return strings.Compare(a.Asset.Code, b.Asset.Code)
}

// moneyField returns the accessor of a numeric sort key, nil for other keys.
func moneyField(key SortKey) func(MoneyValues) decimal.Decimal {
	switch key {
	case SortByPrice:
		return func(m MoneyValues) decimal.Decimal {
			if m.PriceData == nil {
				return decimal.Zero
			}
			return m.PriceData.Close
		}
	case SortByChangePercent:
		return func(m MoneyValues) decimal.Decimal {
			if !m.HasLivePrice() {
				return decimal.Zero
			}
			return m.PriceData.ChangePercent.Decimal
		}
	case SortByMarketValue:
		return func(m MoneyValues) decimal.Decimal { return m.MarketValue }
	case SortByCostValue:
		return func(m MoneyValues) decimal.Decimal { return m.CostValue }
	case SortByGainOnDay:
		return func(m MoneyValues) decimal.Decimal { return m.GainOnDay }
	case SortByUnrealisedGain:
		return func(m MoneyValues) decimal.Decimal { return m.UnrealisedGain }
	case SortByRealisedGain:
		return func(m MoneyValues) decimal.Decimal { return m.RealisedGain }
	case SortByTotalGain:
		return func(m MoneyValues) decimal.Decimal { return m.TotalGain }
	case SortByDividends:
		return func(m MoneyValues) decimal.Decimal { return m.Dividends }
	case SortByIRR:
		return func(m MoneyValues) decimal.Decimal { return m.IRR }
	case SortByROI:
		return func(m MoneyValues) decimal.Decimal { return m.ROI }
	case SortByWeight:
		return func(m MoneyValues) decimal.Decimal { return m.Weight }
	default:
		return nil
	}
}
