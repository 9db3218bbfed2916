package wealth

import "strings"

// Well-known asset category identifiers.
const (
	CategoryEquity     = "EQUITY"
	CategoryETF        = "ETF"
	CategoryMutualFund = "MUTUAL FUND"
	CategoryCash       = "CASH"
	CategoryAccount    = "ACCOUNT"
	CategoryRealEstate = "RE"
)

// CashMarket is the market code of currency balances.
const CashMarket = "CASH"

// AssetCategory classifies an asset (equity, cash, account...).
type AssetCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Market is where an asset is listed, and the currency it trades in.
type Market struct {
	Code     string   `json:"code"`
	Name     string   `json:"name,omitempty"`
	Currency Currency `json:"currency"`
}

// Asset identifies and classifies a held instrument.
type Asset struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	AssetCategory AssetCategory `json:"assetCategory"`
	Sector        string        `json:"sector,omitempty"`
	Market        Market        `json:"market"`
	PriceSymbol   string        `json:"priceSymbol,omitempty"`
}

// IsCashRelated reports whether the asset is a currency balance, a bank
// account, or a real-estate/account style holding. Cash related assets carry
// no purchases or sales and are always listed after the others.
func (a Asset) IsCashRelated() bool {
	if strings.EqualFold(a.Market.Code, CashMarket) {
		return true
	}
	switch strings.ToUpper(a.AssetCategory.ID) {
	case CategoryCash, CategoryAccount, CategoryRealEstate:
		return true
	}
	return false
}

// DisplayName returns the asset name, or its code when the name is unknown.
func (a Asset) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Code
}
