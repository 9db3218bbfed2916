package wealth

import "github.com/shopspring/decimal"

// Total folds positions' values, in one currency perspective, into a running
// aggregate. Its zero value is ready to use and takes the currency of the
// values folded into it.
type Total struct {
	values MoneyValues
	irr    decimal.Decimal // Σ irr × marketValue
	fixed  bool            // currency set by NewTotal
	mixed  bool            // folded values were in different currencies
}

// NewTotal returns a Total expressed in cur whatever the folded values say.
func NewTotal(cur Currency) Total {
	return Total{values: MoneyValues{Currency: cur}, fixed: true}
}

// Add folds the values of p in the currency perspective v.
func (t *Total) Add(p Position, v ValueIn) {
	t.add(p.In(v), p.Asset.IsCashRelated())
}

func (t *Total) add(mv MoneyValues, cashRelated bool) {
	s := &t.values
	s.MarketValue = s.MarketValue.Add(mv.MarketValue)
	s.CostValue = s.CostValue.Add(mv.CostValue)
	s.CostBasis = s.CostBasis.Add(mv.CostBasis)
	s.Dividends = s.Dividends.Add(mv.Dividends)
	s.RealisedGain = s.RealisedGain.Add(mv.RealisedGain)
	s.UnrealisedGain = s.UnrealisedGain.Add(mv.UnrealisedGain)
	s.TotalGain = s.TotalGain.Add(mv.TotalGain)
	s.Fees = s.Fees.Add(mv.Fees)
	s.Tax = s.Tax.Add(mv.Tax)
	s.Weight = s.Weight.Add(mv.Weight)

	if cashRelated {
		s.Cash = s.Cash.Add(mv.MarketValue)
	} else {
		s.Purchases = s.Purchases.Add(mv.Purchases)
		s.Sales = s.Sales.Add(mv.Sales)
	}

	// no price data is not the same as no change.
	if mv.HasLivePrice() {
		s.GainOnDay = s.GainOnDay.Add(mv.GainOnDay)
	}

	t.irr = t.irr.Add(mv.IRR.Mul(mv.MarketValue))

	if t.fixed || t.mixed || mv.Currency.IsZero() {
		return
	}
	switch {
	case s.Currency.IsZero():
		s.Currency = mv.Currency
	case s.Currency.Code != mv.Currency.Code:
		s.Currency = Currency{}
		t.mixed = true
	}
}

// MoneyValues returns the aggregate.
//
// IRR is the market value weighted mean of the folded IRR, ROI is the total
// gain over the cost value.
func (t Total) MoneyValues() MoneyValues {
	out := t.values
	if !out.MarketValue.IsZero() {
		out.IRR = t.irr.Div(out.MarketValue)
	}
	if !out.CostValue.IsZero() {
		out.ROI = out.TotalGain.Div(out.CostValue)
	}
	return out
}

// totals accumulates one Total per currency perspective.
type totals [3]Total

// add folds p in every perspective.
func (ts *totals) add(p Position) {
	for _, v := range AllValuesIn {
		ts[v].Add(p, v)
	}
}

func (ts *totals) values() map[ValueIn]MoneyValues {
	m := make(map[ValueIn]MoneyValues, len(ts))
	for _, v := range AllValuesIn {
		m[v] = ts[v].MoneyValues()
	}
	return m
}
