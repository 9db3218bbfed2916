package wealth

import (
	"encoding/json"

	"github.com/etnz/wealth/date"
)

// HoldingGroup is the set of positions sharing a group key, with their
// sub-totals in every currency perspective.
//
// SubTotals include positions hidden from Positions by the hide-empty filter.
type HoldingGroup struct {
	Key       string                  `json:"key"`
	Positions []Position              `json:"positions"`
	SubTotals map[ValueIn]MoneyValues `json:"subTotals"`
}

// SubTotal returns the group's sub-total in the perspective v.
func (g HoldingGroup) SubTotal(v ValueIn) MoneyValues { return g.SubTotals[v] }

// Holdings is the grouped view of a contract.
type Holdings struct {
	Portfolio PortfolioInfo
	AsAt      date.Date
	ValueIn   ValueIn
	GroupBy   GroupBy
	HideEmpty bool
	// MixedCurrencies is copied from the contract.
	MixedCurrencies bool
	// HoldingGroups in order of first appearance in the feed.
	HoldingGroups []HoldingGroup
	// Totals across all groups. The Trade total stays zero for a mixed
	// currencies contract.
	Totals map[ValueIn]MoneyValues
}

// Group returns the group with the given key.
func (h Holdings) Group(key string) (HoldingGroup, bool) {
	for _, g := range h.HoldingGroups {
		if g.Key == key {
			return g, true
		}
	}
	return HoldingGroup{}, false
}

// Keys returns the group keys in order.
func (h Holdings) Keys() []string {
	keys := make([]string, 0, len(h.HoldingGroups))
	for _, g := range h.HoldingGroups {
		keys = append(keys, g.Key)
	}
	return keys
}

// Total returns the grand total in the requested perspective.
func (h Holdings) Total() MoneyValues { return h.Totals[h.ValueIn] }

// HasTotal reports whether the grand total in the requested perspective is
// meaningful. Trade values of a mixed currencies contract cannot be summed.
func (h Holdings) HasTotal() bool {
	return HoldingContract{IsMixedCurrencies: h.MixedCurrencies}.CanSum(h.ValueIn)
}

// CalculateHoldings groups the contract's positions on groupBy, and
// accumulates per group sub-totals and grand totals.
//
// Every position is folded into totals; hideEmpty only removes zero quantity
// positions from the groups' Positions.
func CalculateHoldings(c HoldingContract, hideEmpty bool, valueIn ValueIn, groupBy GroupBy) Holdings {
	type group struct {
		key       string
		positions []Position
		totals    totals
	}
	var groups []*group
	index := make(map[string]*group)

	var grand totals
	grand[Portfolio] = NewTotal(c.Portfolio.Currency)
	grand[Base] = NewTotal(c.Portfolio.Base)

	for _, p := range c.Positions {
		key := groupBy.Key(p)
		g, ok := index[key]
		if !ok {
			g = &group{key: key, positions: make([]Position, 0)}
			index[key] = g
			groups = append(groups, g)
		}

		g.totals.add(p)
		grand[Portfolio].Add(p, Portfolio)
		grand[Base].Add(p, Base)
		if c.CanSum(Trade) {
			grand[Trade].Add(p, Trade)
		}

		if hideEmpty && p.IsEmpty() {
			continue
		}
		g.positions = append(g.positions, p)
	}

	h := Holdings{
		Portfolio:       c.Portfolio,
		AsAt:            c.AsAt,
		ValueIn:         valueIn,
		GroupBy:         groupBy,
		HideEmpty:       hideEmpty,
		MixedCurrencies: c.IsMixedCurrencies,
		HoldingGroups:   make([]HoldingGroup, 0, len(groups)),
		Totals:          grand.values(),
	}
	for _, g := range groups {
		h.HoldingGroups = append(h.HoldingGroups, HoldingGroup{
			Key:       g.key,
			Positions: g.positions,
			SubTotals: g.totals.values(),
		})
	}
	return h
}

// Sorted returns a copy of h with every group's positions sorted by cfg.
func (h Holdings) Sorted(cfg SortConfig) Holdings {
	groups := make([]HoldingGroup, 0, len(h.HoldingGroups))
	for _, g := range h.HoldingGroups {
		groups = append(groups, SortPositions(g, cfg, h.ValueIn))
	}
	h.HoldingGroups = groups
	return h
}

// MarshalJSON writes holdings with groups as an object keyed by group key, in order.
func (h Holdings) MarshalJSON() ([]byte, error) {
	var groups jsonObjectWriter
	for _, g := range h.HoldingGroups {
		groups.Append(g.Key, g)
	}
	raw, err := groups.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var w jsonObjectWriter
	w.Append("portfolio", h.Portfolio)
	w.Optional("asAt", h.AsAt)
	w.Append("valueIn", h.ValueIn)
	w.Append("groupBy", h.GroupBy)
	w.Append("hideEmpty", h.HideEmpty)
	w.Append("mixedCurrencies", h.MixedCurrencies)
	w.Append("holdingGroups", json.RawMessage(raw))
	w.Append("totals", h.Totals)
	return w.MarshalJSON()
}
