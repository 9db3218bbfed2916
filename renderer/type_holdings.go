package renderer

import (
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
)

// Holdings is the holdings report data.
// Numbers are handled using the exact decimal types (Money, Quantity, etc.)
// So that they already contain basics renderers (SignedString etc.)
type Holdings struct {
	// Name of the portfolio.
	Name string `json:"name,omitempty"`
	// AsAt is the valuation date.
	AsAt    date.Date `json:"asAt"`
	ValueIn string    `json:"valueIn"`
	GroupBy string    `json:"groupBy"`
	// Currency of the totals, empty for mixed currencies.
	Currency string          `json:"currency,omitempty"`
	Groups   []HoldingsGroup `json:"groups"`
	// HasTotal is false when the total cannot be expressed in one currency.
	HasTotal bool        `json:"hasTotal"`
	Total    HoldingsRow `json:"total"`
}

// HoldingsGroup is one group of the report with its sub-total.
type HoldingsGroup struct {
	Key      string        `json:"key"`
	Rows     []HoldingsRow `json:"rows"`
	SubTotal HoldingsRow   `json:"subTotal"`
}

// HoldingsRow represents a position, or an aggregate of positions.
type HoldingsRow struct {
	Code           string          `json:"code,omitempty"`
	Name           string          `json:"name,omitempty"`
	Quantity       wealth.Quantity `json:"quantity"`
	Priced         bool            `json:"priced"`
	Price          wealth.Money    `json:"price"`
	MarketValue    wealth.Money    `json:"marketValue"`
	CostValue      wealth.Money    `json:"costValue"`
	UnrealisedGain wealth.Money    `json:"unrealisedGain"`
	RealisedGain   wealth.Money    `json:"realisedGain"`
	Dividends      wealth.Money    `json:"dividends"`
	GainOnDay      wealth.Money    `json:"gainOnDay"`
	IRR            wealth.Percent  `json:"irr"`
	ROI            wealth.Percent  `json:"roi"`
}

func newRow(mv wealth.MoneyValues) HoldingsRow {
	r := HoldingsRow{
		MarketValue:    mv.Money(mv.MarketValue),
		CostValue:      mv.Money(mv.CostValue),
		UnrealisedGain: mv.Money(mv.UnrealisedGain),
		RealisedGain:   mv.Money(mv.RealisedGain),
		Dividends:      mv.Money(mv.Dividends),
		GainOnDay:      mv.Money(mv.GainOnDay),
		IRR:            wealth.Ratio(mv.IRR),
		ROI:            wealth.Ratio(mv.ROI),
	}
	if mv.PriceData != nil {
		r.Priced = true
		r.Price = mv.Money(mv.PriceData.Close)
	}
	return r
}

// NewHoldings creates the report data of grouped holdings. Positions are
// listed in the order of h.
func NewHoldings(h wealth.Holdings) *Holdings {
	total := h.Total()
	res := &Holdings{
		Name:     h.Portfolio.Name,
		AsAt:     h.AsAt,
		ValueIn:  h.ValueIn.String(),
		GroupBy:  h.GroupBy.String(),
		Currency: total.Currency.Code,
		HasTotal: h.HasTotal(),
		Total:    newRow(total),
	}
	if res.Name == "" {
		res.Name = h.Portfolio.Code
	}
	for _, g := range h.HoldingGroups {
		group := HoldingsGroup{Key: g.Key, SubTotal: newRow(g.SubTotal(h.ValueIn))}
		for _, p := range g.Positions {
			row := newRow(p.In(h.ValueIn))
			row.Code = p.Asset.Code
			row.Name = p.Asset.DisplayName()
			row.Quantity = p.QuantityValues.Total
			group.Rows = append(group.Rows, row)
		}
		res.Groups = append(res.Groups, group)
	}
	return res
}
