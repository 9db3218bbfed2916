package wealth

import (
	"cmp"
	"hash/fnv"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// AllocationSlice is one bucket of a percentage-of-total breakdown.
type AllocationSlice struct {
	Key        string          `json:"key"`
	Label      string          `json:"label"`
	Value      decimal.Decimal `json:"value"`
	Percentage Percent         `json:"percentage"`
	Color      string          `json:"color"`
	GainOnDay  decimal.Decimal `json:"gainOnDay"`
	IRR        decimal.Decimal `json:"irr"`
}

// ManualAssets are user entered values of assets the feed does not hold
// (a property, a pension...), keyed by allocation bucket.
type ManualAssets map[string]decimal.Decimal

// AllocationRequest selects how an Allocation is computed.
type AllocationRequest struct {
	GroupBy GroupBy
	ValueIn ValueIn
	// Manual values are in the native currency of ValueIn.
	Manual ManualAssets
	// Rate converts native values into DisplayCurrency. Zero means 1.
	Rate            decimal.Decimal
	DisplayCurrency Currency
}

// Allocation is the breakdown of a contract's market value.
type Allocation struct {
	GroupBy  GroupBy           `json:"groupBy"`
	ValueIn  ValueIn           `json:"valueIn"`
	Currency Currency          `json:"currency"`
	Total    decimal.Decimal   `json:"total"`
	Slices   []AllocationSlice `json:"slices"`
	// Empty lists the buckets left out because their value is not positive.
	Empty []string `json:"empty,omitempty"`
}

// bucket accumulates the positions of one allocation slice.
type bucket struct {
	key, label string
	value      decimal.Decimal
	gainOnDay  decimal.Decimal
	irr        decimal.Decimal // Σ irr × marketValue
}

type buckets struct {
	list  []*bucket
	index map[string]*bucket
}

func (bs *buckets) get(key, label string) *bucket {
	if b, ok := bs.index[key]; ok {
		return b
	}
	b := &bucket{key: key, label: label}
	bs.index[key] = b
	bs.list = append(bs.list, b)
	return b
}

// collect sums the market value of positions per bucket. It collects nothing
// when the values of v cannot be summed.
func collect(c HoldingContract, by GroupBy, v ValueIn) *buckets {
	bs := &buckets{index: make(map[string]*bucket)}
	if !c.CanSum(v) {
		return bs
	}
	for _, p := range c.Positions {
		mv := p.In(v)
		b := bs.get(by.Key(p), by.Label(p))
		b.value = b.value.Add(mv.MarketValue)
		b.irr = b.irr.Add(mv.IRR.Mul(mv.MarketValue))
		if mv.HasLivePrice() {
			b.gainOnDay = b.gainOnDay.Add(mv.GainOnDay)
		}
	}
	return bs
}

// merge adds manual values to the buckets with the same key.
func (bs *buckets) merge(manual ManualAssets) {
	for _, key := range slices.Sorted(maps.Keys(manual)) {
		b := bs.get(key, key)
		b.value = b.value.Add(manual[key])
	}
}

// toSlices returns the positive buckets as slices, biggest first, and the keys
// of the others.
func (bs *buckets) toSlices() ([]AllocationSlice, []string) {
	total := decimal.Zero
	var empty []string
	for _, b := range bs.list {
		if b.value.IsPositive() {
			total = total.Add(b.value)
		} else {
			empty = append(empty, b.key)
		}
	}

	result := make([]AllocationSlice, 0, len(bs.list))
	for _, b := range bs.list {
		if !b.value.IsPositive() {
			continue
		}
		result = append(result, AllocationSlice{
			Key:        b.key,
			Label:      b.label,
			Value:      b.value,
			Percentage: percentOf(b.value, total),
			Color:      ColorOf(b.key),
			GainOnDay:  b.gainOnDay,
			IRR:        b.irr.Div(b.value),
		})
	}
	slices.SortStableFunc(result, func(a, b AllocationSlice) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return result, empty
}

// TransformToAllocationSlices breaks the contract's market value in the
// perspective v down into slices grouped on by.
//
// Buckets whose value is not positive are left out, percentages are each
// slice's share of the sum of the slices. Trade values of a mixed currencies
// contract give no slice.
func TransformToAllocationSlices(c HoldingContract, by GroupBy, v ValueIn) []AllocationSlice {
	result, _ := collect(c, by, v).toSlices()
	return result
}

// NewAllocation computes the allocation of the contract, including manual
// assets, and converts values into the display currency.
//
// Percentages are computed before the conversion and do not depend on it.
// Trade values of a mixed currencies contract, manual assets included, give
// an empty allocation.
func NewAllocation(c HoldingContract, req AllocationRequest) Allocation {
	bs := collect(c, req.GroupBy, req.ValueIn)
	if c.CanSum(req.ValueIn) {
		bs.merge(req.Manual)
	}
	result, empty := bs.toSlices()

	rate := req.Rate
	if rate.IsZero() {
		rate = decimal.NewFromInt(1)
	}
	total := decimal.Zero
	for _, s := range result {
		total = total.Add(s.Value)
	}
	cur := req.DisplayCurrency
	if cur.IsZero() {
		cur = NativeCurrency(c, req.ValueIn)
	}
	return Allocation{
		GroupBy:  req.GroupBy,
		ValueIn:  req.ValueIn,
		Currency: cur,
		Total:    total.Mul(rate),
		Slices:   RescaleSlices(result, rate),
		Empty:    empty,
	}
}

// RescaleSlices returns a copy of slices with values multiplied by rate.
// Percentages are unchanged.
func RescaleSlices(s []AllocationSlice, rate decimal.Decimal) []AllocationSlice {
	out := make([]AllocationSlice, len(s))
	for i, slice := range s {
		slice.Value = slice.Value.Mul(rate)
		slice.GainOnDay = slice.GainOnDay.Mul(rate)
		out[i] = slice
	}
	return out
}

// categoryColors are the conventional colors of well-known buckets.
var categoryColors = map[string]string{
	"equity":       "#4e79a7",
	"etf":          "#59a14f",
	"cash":         "#f28e2b",
	"account":      "#edc948",
	"fixed income": "#76b7b2",
	"property":     "#9c755f",
	"mutual fund":  "#b07aa1",
	"crypto":       "#ff9da7",
}

var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ColorOf returns the display color of a bucket key. A key always gets the
// same color.
func ColorOf(key string) string {
	if c, ok := categoryColors[strings.ToLower(key)]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	return palette[h.Sum32()%uint32(len(palette))]
}

// MarshalJSON writes the allocation in a stable field order.
func (a Allocation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("groupBy", a.GroupBy)
	w.Append("valueIn", a.ValueIn)
	w.Optional("currency", a.Currency)
	w.Append("total", a.Total)
	w.Append("slices", a.Slices)
	w.Optional("empty", a.Empty)
	return w.MarshalJSON()
}
