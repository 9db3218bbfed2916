package wealth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ErrRateNotFound is returned when no rate is known for a currency pair.
var ErrRateNotFound = errors.New("fx rate not found")

// DefaultRatesPath locates the rates in a currency service response.
const DefaultRatesPath = "$.data.rates"

// RateSource supplies FX rates: one unit of from is worth rate units of to.
type RateSource interface {
	Rate(from, to string) (decimal.Decimal, error)
}

// CurrencyPair identifies a conversion.
type CurrencyPair struct {
	From, To string
}

func (p CurrencyPair) String() string { return p.From + ":" + p.To }

// Rates is a static RateSource.
type Rates map[CurrencyPair]decimal.Decimal

// Rate implements RateSource. The rate between a currency and itself is 1,
// and a pair known only the other way round is inverted.
func (r Rates) Rate(from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	if rate, ok := r[CurrencyPair{from, to}]; ok {
		return rate, nil
	}
	if rate, ok := r[CurrencyPair{to, from}]; ok && !rate.IsZero() {
		return decimal.NewFromInt(1).DivRound(rate, 16), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s:%s", ErrRateNotFound, from, to)
}

// rateEntry is one rate of a currency service response. from and to are
// either a code or an object with a code.
type rateEntry struct {
	From any             `json:"from"`
	To   any             `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

func currencyCode(v any) string {
	switch c := v.(type) {
	case string:
		return strings.ToUpper(c)
	case map[string]any:
		if code, ok := c["code"].(string); ok {
			return strings.ToUpper(code)
		}
	}
	return ""
}

// DecodeRates reads FX rates from a currency service response. path is a
// jsonpath selecting an object or an array of {from, to, rate} entries.
// Entries of an object whose from or to is missing use the object key,
// formatted "FROM:TO", and may be the bare rate.
func DecodeRates(r io.Reader, path string) (Rates, error) {
	if path == "" {
		path = DefaultRatesPath
	}
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid rates document: %w", err)
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error selecting rates with %q: %w", path, err)
	}

	rates := make(Rates)
	add := func(key string, v any) error {
		if n, ok := v.(json.Number); ok {
			v = map[string]any{"rate": n}
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var e rateEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return fmt.Errorf("invalid rate %s: %w", raw, err)
		}
		from, to := currencyCode(e.From), currencyCode(e.To)
		if k1, k2, ok := strings.Cut(key, ":"); ok {
			if from == "" {
				from = strings.ToUpper(k1)
			}
			if to == "" {
				to = strings.ToUpper(k2)
			}
		}
		if from == "" || to == "" {
			return fmt.Errorf("invalid rate %s: missing currency", raw)
		}
		rates[CurrencyPair{from, to}] = e.Rate
		return nil
	}

	switch s := selected.(type) {
	case map[string]any:
		for key, v := range s {
			if err := add(key, v); err != nil {
				return nil, err
			}
		}
	case []any:
		for _, v := range s {
			if err := add("", v); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("rates at %q: want an object or an array, got %T", path, selected)
	}
	return rates, nil
}
