package wealth

import (
	"github.com/Rhymond/go-money"
)

// Currency identifies a currency as reported by the position feed.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Fill returns c with its Symbol completed from the ISO currency table when the
// feed left it empty.
func (c Currency) Fill() Currency {
	if c.Symbol != "" || c.Code == "" {
		return c
	}
	if cur := money.GetCurrency(c.Code); cur != nil {
		c.Symbol = cur.Grapheme
	}
	return c
}

// IsZero reports whether the currency is unknown.
func (c Currency) IsZero() bool { return c.Code == "" }

func (c Currency) String() string { return c.Code }
