package wealth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/etnz/wealth/date"
)

// PortfolioInfo identifies the portfolio a contract values.
type PortfolioInfo struct {
	ID       string   `json:"id"`
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Currency Currency `json:"currency"`
	Base     Currency `json:"base"`
	Owner    string   `json:"owner,omitempty"`
}

// HoldingContract is the position feed produced by the valuation service.
//
// IsMixedCurrencies is true when positions were traded in more than one
// currency, in which case Trade values cannot be summed across positions.
type HoldingContract struct {
	Portfolio         PortfolioInfo `json:"portfolio"`
	IsMixedCurrencies bool      `json:"isMixedCurrencies"`
	AsAt              date.Date `json:"asAt"`
	Positions         Positions `json:"positions"`
}

// ErrMixedCurrencies is returned when Trade values of a mixed currencies
// contract would have to be added up.
var ErrMixedCurrencies = errors.New("trade values are in several currencies")

// CanSum reports whether the values of the perspective v can be added up
// across positions. Trade values of a mixed currencies contract cannot.
func (c HoldingContract) CanSum(v ValueIn) bool {
	return v != Trade || !c.IsMixedCurrencies
}

// Positions is the list of positions of a contract, in feed order.
//
// In json it is an object keyed by asset id. Decoding keeps the order of the
// keys, and uses the key as the asset id when the asset has none. A json array
// of positions is accepted too.
type Positions []Position

// UnmarshalJSON implements json.Unmarshaler.
func (ps *Positions) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*ps = nil
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var list []Position
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*ps = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("invalid positions: want an object or an array, got %v", tok)
	}
	var list Positions
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var p Position
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("invalid position %q: %w", key, err)
		}
		if p.Asset.ID == "" {
			p.Asset.ID = key
		}
		list = append(list, p)
	}
	*ps = list
	return nil
}

// MarshalJSON implements json.Marshaler, writing positions keyed by asset id in order.
func (ps Positions) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, p := range ps {
		w.Append(p.Asset.ID, p)
	}
	return w.MarshalJSON()
}

// NativeCurrency returns the currency values are expressed in for the
// perspective v. It is empty for the Trade perspective of a mixed currencies
// contract, or when the contract does not say.
func NativeCurrency(c HoldingContract, v ValueIn) Currency {
	switch v {
	case Portfolio:
		return c.Portfolio.Currency
	case Base:
		return c.Portfolio.Base
	}
	if c.IsMixedCurrencies {
		return Currency{}
	}
	for _, p := range c.Positions {
		if cur := p.In(Trade).Currency; !cur.IsZero() {
			return cur
		}
	}
	return Currency{}
}
