package renderer

import (
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/view"
)

// Allocation is the allocation report data.
type Allocation struct {
	Name     string `json:"name,omitempty"`
	GroupBy  string `json:"groupBy"`
	ValueIn  string `json:"valueIn"`
	Currency string `json:"currency,omitempty"`
	// Total of the visible slices.
	Total  wealth.Money      `json:"total"`
	Slices []AllocationSlice `json:"slices"`
	// Excluded lists the buckets hidden by the user.
	Excluded []string `json:"excluded,omitempty"`
	// Empty lists the buckets without a positive value.
	Empty []string `json:"empty,omitempty"`
}

// AllocationSlice is one row of the allocation report.
type AllocationSlice struct {
	Key        string         `json:"key"`
	Label      string         `json:"label"`
	Color      string         `json:"color"`
	Value      wealth.Money   `json:"value"`
	Percentage wealth.Percent `json:"percentage"`
	GainOnDay  wealth.Money   `json:"gainOnDay"`
	IRR        wealth.Percent `json:"irr"`
}

// NewAllocation creates the report data of the model's allocation, nil if the
// model has none.
func NewAllocation(m view.Model) *Allocation {
	a := m.Allocation
	if a == nil {
		return nil
	}
	cur := a.Currency.Code
	res := &Allocation{
		Name:     m.Holdings.Portfolio.Name,
		GroupBy:  a.GroupBy.String(),
		ValueIn:  a.ValueIn.String(),
		Currency: cur,
		Total:    wealth.M(m.VisibleTotal(), cur),
		Excluded: m.State.ExcludedCategories,
		Empty:    a.Empty,
	}
	if res.Name == "" {
		res.Name = m.Holdings.Portfolio.Code
	}
	for _, s := range m.VisibleSlices() {
		res.Slices = append(res.Slices, AllocationSlice{
			Key:        s.Key,
			Label:      s.Label,
			Color:      s.Color,
			Value:      wealth.M(s.Value, cur),
			Percentage: s.Percentage,
			GainOnDay:  wealth.M(s.GainOnDay, cur),
			IRR:        wealth.Ratio(s.IRR),
		})
	}
	return res
}

// Group describes a grouping axis.
type Group struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// NewGroups lists every grouping axis.
func NewGroups() []Group {
	var res []Group
	for _, g := range wealth.AllGroupBy {
		res = append(res, Group{Name: g.String(), Path: g.Path()})
	}
	return res
}
