package wealth

import (
	"github.com/etnz/wealth/date"
	"github.com/shopspring/decimal"
)

// PriceData is the latest market price of an asset. A position without
// PriceData is not currently priced (e.g. a private or manual asset).
type PriceData struct {
	Close         decimal.Decimal     `json:"close"`
	PreviousClose decimal.Decimal     `json:"previousClose"`
	Change        decimal.Decimal     `json:"change"`
	ChangePercent decimal.NullDecimal `json:"changePercent"`
	PriceDate     date.Date           `json:"priceDate"`
}

// MoneyValues is a monetary snapshot of a position, or of an aggregate of
// positions, in one currency perspective.
//
// Amounts are in Currency. Weight, IRR and ROI are fractions (0.1 is 10%).
type MoneyValues struct {
	Currency       Currency        `json:"currency"`
	MarketValue    decimal.Decimal `json:"marketValue"`
	CostValue      decimal.Decimal `json:"costValue"`
	CostBasis      decimal.Decimal `json:"costBasis"`
	AverageCost    decimal.Decimal `json:"averageCost"`
	Dividends      decimal.Decimal `json:"dividends"`
	RealisedGain   decimal.Decimal `json:"realisedGain"`
	UnrealisedGain decimal.Decimal `json:"unrealisedGain"`
	TotalGain      decimal.Decimal `json:"totalGain"`
	GainOnDay      decimal.Decimal `json:"gainOnDay"`
	Purchases      decimal.Decimal `json:"purchases"`
	Sales          decimal.Decimal `json:"sales"`
	Cash           decimal.Decimal `json:"cash"`
	Fees           decimal.Decimal `json:"fees"`
	Tax            decimal.Decimal `json:"tax"`
	Weight         decimal.Decimal `json:"weight"`
	IRR            decimal.Decimal `json:"irr"`
	ROI            decimal.Decimal `json:"roi"`
	PriceData      *PriceData      `json:"priceData,omitempty"`
}

// HasLivePrice reports whether the values carry a price change for the day.
func (m MoneyValues) HasLivePrice() bool {
	return m.PriceData != nil && m.PriceData.ChangePercent.Valid
}

// Money returns amount as Money in m's currency.
func (m MoneyValues) Money(amount decimal.Decimal) Money {
	return Money{value: amount, cur: m.Currency.Code}
}

// Perspectives holds the MoneyValues of a position in each currency perspective.
// A missing perspective reads as zero values.
type Perspectives map[ValueIn]MoneyValues

// QuantityValues counts the units of a position. A zero Total is a fully
// exited (closed) position.
type QuantityValues struct {
	Total     Quantity `json:"total"`
	Purchased Quantity `json:"purchased"`
	Sold      Quantity `json:"sold"`
	Precision int      `json:"precision"`
}

// DateValues carries optional dates about a position.
type DateValues struct {
	Opened       date.Date `json:"opened"`
	Last         date.Date `json:"last"`
	Closed       date.Date `json:"closed"`
	LastDividend date.Date `json:"lastDividend"`
}

// Position is one held instrument at a point in time.
type Position struct {
	Asset          Asset          `json:"asset"`
	MoneyValues    Perspectives   `json:"moneyValues"`
	QuantityValues QuantityValues `json:"quantityValues"`
	DateValues     DateValues     `json:"dateValues"`
}

// In returns the position's values in the currency perspective v.
func (p Position) In(v ValueIn) MoneyValues { return p.MoneyValues[v] }

// IsEmpty reports whether the position has been fully exited.
func (p Position) IsEmpty() bool { return p.QuantityValues.Total.IsZero() }
