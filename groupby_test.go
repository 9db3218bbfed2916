package wealth

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestGroupBy_Key(t *testing.T) {
	p := equity("AAPL", 1)
	p.Asset.Sector = "Technology"

	tests := []struct {
		by   GroupBy
		want string
	}{
		{ByCategory, "Equity"},
		{ByMarket, "NASDAQ"},
		{ByMarketCurrency, "USD"},
		{BySector, "Technology"},
		{ByAsset, "AAPL"},
	}
	for _, tt := range tests {
		if got := tt.by.Key(p); got != tt.want {
			t.Errorf("%v.Key() = %q, want %q", tt.by, got, tt.want)
		}
	}

	var missing Position
	for _, by := range AllGroupBy {
		if got := by.Key(missing); got != UndefinedKey {
			t.Errorf("%v.Key(empty) = %q, want %q", by, got, UndefinedKey)
		}
	}
}

func TestGroupBy_Label(t *testing.T) {
	p := equity("AAPL", 1)
	if got := ByAsset.Label(p); got != "AAPL Inc" {
		t.Errorf("ByAsset.Label() = %q, want %q", got, "AAPL Inc")
	}
	if got := ByCategory.Label(p); got != "Equity" {
		t.Errorf("ByCategory.Label() = %q, want %q", got, "Equity")
	}
	p.Asset.Name = ""
	if got := ByAsset.Label(p); got != "AAPL" {
		t.Errorf("ByAsset.Label() without name = %q, want %q", got, "AAPL")
	}
}

func TestParseGroupBy(t *testing.T) {
	for _, by := range AllGroupBy {
		if got, err := ParseGroupBy(by.String()); err != nil || got != by {
			t.Errorf("ParseGroupBy(%q) = %v, %v, want %v", by.String(), got, err, by)
		}
		if got, err := ParseGroupBy(by.Path()); err != nil || got != by {
			t.Errorf("ParseGroupBy(%q) = %v, %v, want %v", by.Path(), got, err, by)
		}
	}
	if got, err := ParseGroupBy("Category"); err != nil || got != ByCategory {
		t.Errorf("ParseGroupBy(%q) = %v, %v, want %v", "Category", got, err, ByCategory)
	}
	if _, err := ParseGroupBy("asset.colour"); !errors.Is(err, ErrUnknownGroupBy) {
		t.Errorf("ParseGroupBy(%q) error = %v, want %v", "asset.colour", err, ErrUnknownGroupBy)
	}
}

func TestGroupBy_JSON(t *testing.T) {
	b, err := json.Marshal(map[string]GroupBy{"by": ByMarketCurrency})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if got, want := string(b), `{"by":"currency"}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var v struct{ By GroupBy }
	if err := json.Unmarshal([]byte(`{"By":"asset.sector"}`), &v); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if v.By != BySector {
		t.Errorf("json.Unmarshal() = %v, want %v", v.By, BySector)
	}
}
