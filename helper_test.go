package wealth

import (
	"maps"

	"github.com/etnz/wealth/date"
	"github.com/shopspring/decimal"
)

var (
	usd = Currency{Code: "USD", Symbol: "$"}
	nzd = Currency{Code: "NZD", Symbol: "$"}
	gbp = Currency{Code: "GBP", Symbol: "£"}
)

// newPosition returns a held position whose values are the same in every perspective.
func newPosition(code, categoryID, categoryName string, marketValue float64) Position {
	values := MoneyValues{
		Currency:       usd,
		MarketValue:    D(marketValue),
		CostValue:      D(marketValue / 2),
		UnrealisedGain: D(marketValue / 2),
		TotalGain:      D(marketValue / 2),
		Purchases:      D(marketValue / 2),
	}
	return Position{
		Asset: Asset{
			ID:            code,
			Code:          code,
			Name:          code + " Inc",
			AssetCategory: AssetCategory{ID: categoryID, Name: categoryName},
			Market:        Market{Code: "NASDAQ", Currency: usd},
		},
		MoneyValues:    Perspectives{Portfolio: values, Base: values, Trade: values},
		QuantityValues: QuantityValues{Total: Q(10), Purchased: Q(10)},
	}
}

// equity is a helper for test to create an equity position.
func equity(code string, marketValue float64) Position {
	return newPosition(code, CategoryEquity, "Equity", marketValue)
}

// cash is a helper for test to create a currency balance.
func cash(code string, marketValue float64) Position {
	p := newPosition(code, CategoryCash, "Cash", marketValue)
	p.Asset.Market.Code = CashMarket
	return p
}

// closed returns p fully exited.
func closed(p Position) Position {
	p.QuantityValues.Total = Q(0)
	p.QuantityValues.Sold = p.QuantityValues.Purchased
	return p
}

// with returns p with f applied to its values in every perspective.
func with(p Position, f func(*MoneyValues)) Position {
	p.MoneyValues = maps.Clone(p.MoneyValues)
	for v, mv := range p.MoneyValues {
		f(&mv)
		p.MoneyValues[v] = mv
	}
	return p
}

// withIn returns p with f applied to its values in the perspective v only.
func withIn(p Position, v ValueIn, f func(*MoneyValues)) Position {
	p.MoneyValues = maps.Clone(p.MoneyValues)
	mv := p.MoneyValues[v]
	f(&mv)
	p.MoneyValues[v] = mv
	return p
}

// livePrice sets a price with a day change on the values.
func livePrice(close, changePercent, gainOnDay float64) func(*MoneyValues) {
	return func(mv *MoneyValues) {
		mv.PriceData = &PriceData{
			Close:         D(close),
			ChangePercent: decimal.NewNullDecimal(D(changePercent)),
			PriceDate:     date.New(2025, 3, 14),
		}
		mv.GainOnDay = D(gainOnDay)
	}
}

func newContract(positions ...Position) HoldingContract {
	return HoldingContract{
		Portfolio: PortfolioInfo{ID: "p1", Code: "TEST", Name: "Test portfolio", Currency: usd, Base: nzd},
		AsAt:      date.New(2025, 3, 14),
		Positions: positions,
	}
}

func codes(ps []Position) []string {
	var res []string
	for _, p := range ps {
		res = append(res, p.Asset.Code)
	}
	return res
}
