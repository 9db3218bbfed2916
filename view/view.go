// Package view combines the engine's operations into the model a holdings
// screen displays: grouped and sorted holdings, and the allocation breakdown
// in the user's display currency.
package view

import (
	"fmt"
	"slices"

	"github.com/etnz/wealth"
	"github.com/shopspring/decimal"
)

// Mode is the way holdings are displayed.
type Mode int

const (
	Table Mode = iota
	Cards
	Allocation
)

var modeNames = []string{Table: "table", Cards: "cards", Allocation: "allocation"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode parses a display mode name.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown view mode %q", s)
}

// Options are the parameters of the computation. They are always passed
// explicitly.
type Options struct {
	GroupBy   wealth.GroupBy
	ValueIn   wealth.ValueIn
	HideEmpty bool
	// DisplayCurrency of the allocation. Empty means the native currency of
	// ValueIn.
	DisplayCurrency string
}

// DefaultOptions groups by category in the portfolio currency, hiding closed
// positions.
func DefaultOptions() Options {
	return Options{GroupBy: wealth.ByCategory, ValueIn: wealth.Portfolio, HideEmpty: true}
}

// State is what the user changes interactively.
type State struct {
	Mode              Mode
	Sort              wealth.SortConfig
	AllocationGroupBy wealth.GroupBy
	// ExcludedCategories are allocation keys hidden from the chart.
	ExcludedCategories []string
}

// SortBy selects key. Selecting the current key again flips the direction,
// a new key starts ascending.
func (s *State) SortBy(key wealth.SortKey) {
	if s.Sort.Key == key {
		if s.Sort.Direction == wealth.Ascending {
			s.Sort.Direction = wealth.Descending
		} else {
			s.Sort.Direction = wealth.Ascending
		}
		return
	}
	s.Sort = wealth.SortConfig{Key: key, Direction: wealth.Ascending}
}

// ToggleCategory excludes key from the visible slices, or includes it back.
func (s *State) ToggleCategory(key string) {
	if i := slices.Index(s.ExcludedCategories, key); i >= 0 {
		s.ExcludedCategories = slices.Delete(slices.Clone(s.ExcludedCategories), i, i+1)
		return
	}
	s.ExcludedCategories = append(slices.Clone(s.ExcludedCategories), key)
}

// Excluded reports whether key is hidden.
func (s State) Excluded(key string) bool { return slices.Contains(s.ExcludedCategories, key) }

// Model is the computed content of a holdings screen.
type Model struct {
	Options  Options
	State    State
	Holdings wealth.Holdings
	// Allocation is only computed in the Allocation mode.
	Allocation *wealth.Allocation
}

// Compute derives the model from a contract.
//
// rates is only used in the Allocation mode, to convert from the native
// currency of opts.ValueIn into opts.DisplayCurrency. It can be nil when no
// conversion is needed.
func Compute(c wealth.HoldingContract, opts Options, state State, rates wealth.RateSource, manual wealth.ManualAssets) (Model, error) {
	h := wealth.CalculateHoldings(c, opts.HideEmpty, opts.ValueIn, opts.GroupBy)
	m := Model{
		Options:  opts,
		State:    state,
		Holdings: h.Sorted(state.Sort),
	}
	if state.Mode != Allocation {
		return m, nil
	}

	req := wealth.AllocationRequest{
		GroupBy: state.AllocationGroupBy,
		ValueIn: opts.ValueIn,
		Manual:  manual,
	}
	if !c.CanSum(opts.ValueIn) {
		return Model{}, fmt.Errorf("cannot allocate %v values: %w", opts.ValueIn, wealth.ErrMixedCurrencies)
	}
	native := wealth.NativeCurrency(c, opts.ValueIn)
	if opts.DisplayCurrency != "" && opts.DisplayCurrency != native.Code {
		if native.IsZero() {
			return Model{}, fmt.Errorf("cannot convert %v values of unknown currency to %s", opts.ValueIn, opts.DisplayCurrency)
		}
		if rates == nil {
			return Model{}, fmt.Errorf("no fx rates to convert %s to %s", native.Code, opts.DisplayCurrency)
		}
		rate, err := rates.Rate(native.Code, opts.DisplayCurrency)
		if err != nil {
			return Model{}, fmt.Errorf("cannot convert allocation to %s: %w", opts.DisplayCurrency, err)
		}
		req.Rate = rate
		req.DisplayCurrency = wealth.Currency{Code: opts.DisplayCurrency}.Fill()
	}

	a := wealth.NewAllocation(c, req)
	m.Allocation = &a
	return m, nil
}

// VisibleSlices returns the allocation slices not excluded by the state.
// Percentages are not recomputed.
func (m Model) VisibleSlices() []wealth.AllocationSlice {
	if m.Allocation == nil {
		return nil
	}
	var res []wealth.AllocationSlice
	for _, s := range m.Allocation.Slices {
		if !m.State.Excluded(s.Key) {
			res = append(res, s)
		}
	}
	return res
}

// VisibleTotal is the sum of the visible slices' values.
func (m Model) VisibleTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range m.VisibleSlices() {
		total = total.Add(s.Value)
	}
	return total
}
