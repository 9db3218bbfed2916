package wealth

import (
	"slices"
	"testing"
)

func group(positions ...Position) HoldingGroup {
	return HoldingGroup{Key: "test", Positions: positions}
}

func TestSortPositions_CashLast(t *testing.T) {
	g := group(cash("USD", 10000), equity("EQ1", 5000), equity("EQ2", 3000))

	got := SortPositions(g, SortConfig{Key: SortByMarketValue, Direction: Descending}, Portfolio)

	if want := []string{"EQ1", "EQ2", "USD"}; !slices.Equal(codes(got.Positions), want) {
		t.Errorf("SortPositions() = %v, want %v", codes(got.Positions), want)
	}
}

func TestSortPositions_CashLastForEveryKey(t *testing.T) {
	g := group(
		cash("USD", 10000),
		equity("B", 5000),
		newPosition("HOUSE", CategoryRealEstate, "Real Estate", 250000),
		equity("A", 3000),
		newPosition("SAVINGS", CategoryAccount, "Accounts", 1),
		equity("C", 7000),
	)

	for i := range sortKeyNames {
		key := SortKey(i)
		if key == SortNone {
			continue
		}
		for _, dir := range []Direction{Ascending, Descending} {
			got := SortPositions(g, SortConfig{Key: key, Direction: dir}, Portfolio).Positions
			if len(got) != len(g.Positions) {
				t.Fatalf("%v %v: len = %d, want %d", key, dir, len(got), len(g.Positions))
			}
			seenCash := false
			for _, p := range got {
				if p.Asset.IsCashRelated() {
					seenCash = true
				} else if seenCash {
					t.Errorf("%v %v: %s sorted after a cash related position in %v", key, dir, p.Asset.Code, codes(got))
				}
			}
		}
	}
}

func TestSortPositions_None(t *testing.T) {
	g := group(equity("B", 1), cash("USD", 2), equity("A", 3))

	got := SortPositions(g, SortConfig{Key: SortNone, Direction: Descending}, Portfolio)

	if want := []string{"B", "USD", "A"}; !slices.Equal(codes(got.Positions), want) {
		t.Errorf("SortPositions() = %v, want feed order %v", codes(got.Positions), want)
	}
}

func TestSortPositions_Keys(t *testing.T) {
	a := with(equity("A", 300), func(mv *MoneyValues) { mv.IRR = D(0.05); mv.RealisedGain = D(10) })
	a.Asset.Name = "zeta"
	b := with(equity("B", 100), func(mv *MoneyValues) { mv.IRR = D(0.20); mv.RealisedGain = D(-3) })
	b.Asset.Name = "Alpha"
	b.QuantityValues.Total = Q(50)
	c := with(equity("C", 200), func(mv *MoneyValues) { mv.IRR = D(-0.1); mv.RealisedGain = D(0) })
	c.Asset.Name = "mu"
	c.QuantityValues.Total = Q(2)
	g := group(b, c, a)

	tests := []struct {
		cfg  SortConfig
		want []string
	}{
		{SortConfig{SortByAssetCode, Ascending}, []string{"A", "B", "C"}},
		{SortConfig{SortByAssetCode, Descending}, []string{"C", "B", "A"}},
		{SortConfig{SortByAssetName, Ascending}, []string{"B", "C", "A"}},
		{SortConfig{SortByMarketValue, Ascending}, []string{"B", "C", "A"}},
		{SortConfig{SortByIRR, Descending}, []string{"B", "A", "C"}},
		{SortConfig{SortByRealisedGain, Ascending}, []string{"B", "C", "A"}},
		{SortConfig{SortByQuantity, Descending}, []string{"B", "A", "C"}},
		{SortConfig{ParseSortKey("noSuchField"), Ascending}, []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		got := SortPositions(g, tt.cfg, Portfolio)
		if !slices.Equal(codes(got.Positions), tt.want) {
			t.Errorf("SortPositions(%v %v) = %v, want %v", tt.cfg.Key, tt.cfg.Direction, codes(got.Positions), tt.want)
		}
	}
}

func TestSortPositions_MissingPriceIsZero(t *testing.T) {
	priced := with(equity("PRICED", 1), livePrice(12.5, 0.02, 1))
	private := equity("PRIVATE", 1)
	falling := with(equity("FALLING", 1), livePrice(3, -0.05, -1))
	g := group(priced, private, falling)

	got := SortPositions(g, SortConfig{Key: SortByPrice, Direction: Ascending}, Portfolio)
	if want := []string{"PRIVATE", "FALLING", "PRICED"}; !slices.Equal(codes(got.Positions), want) {
		t.Errorf("by price = %v, want %v", codes(got.Positions), want)
	}

	got = SortPositions(g, SortConfig{Key: SortByChangePercent, Direction: Ascending}, Portfolio)
	if want := []string{"FALLING", "PRIVATE", "PRICED"}; !slices.Equal(codes(got.Positions), want) {
		t.Errorf("by change = %v, want %v", codes(got.Positions), want)
	}
}

func TestSortPositions_Stable(t *testing.T) {
	g := group(equity("X", 10), equity("Y", 20), equity("Z", 10), equity("W", 20))

	got := SortPositions(g, SortConfig{Key: SortByMarketValue, Direction: Ascending}, Portfolio)
	if want := []string{"X", "Z", "Y", "W"}; !slices.Equal(codes(got.Positions), want) {
		t.Errorf("SortPositions() = %v, want %v", codes(got.Positions), want)
	}
	got = SortPositions(g, SortConfig{Key: SortByMarketValue, Direction: Descending}, Portfolio)
	if want := []string{"Y", "W", "X", "Z"}; !slices.Equal(codes(got.Positions), want) {
		t.Errorf("SortPositions() = %v, want %v", codes(got.Positions), want)
	}
}

func TestSortPositions_Perspective(t *testing.T) {
	a := withIn(equity("A", 100), Base, func(mv *MoneyValues) { mv.MarketValue = D(900) })
	b := equity("B", 200)
	g := group(a, b)

	got := SortPositions(g, SortConfig{Key: SortByMarketValue, Direction: Descending}, Portfolio)
	if want := []string{"B", "A"}; !slices.Equal(codes(got.Positions), want) {
		t.Errorf("in PORTFOLIO = %v, want %v", codes(got.Positions), want)
	}
	got = SortPositions(g, SortConfig{Key: SortByMarketValue, Direction: Descending}, Base)
	if want := []string{"A", "B"}; !slices.Equal(codes(got.Positions), want) {
		t.Errorf("in BASE = %v, want %v", codes(got.Positions), want)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"", SortNone},
		{"marketValue", SortByMarketValue},
		{"MARKETVALUE", SortByMarketValue},
		{" irr ", SortByIRR},
		{"bogus", SortByAssetCode},
	}
	for _, tt := range tests {
		if got := ParseSortKey(tt.in); got != tt.want {
			t.Errorf("ParseSortKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"": Ascending, "asc": Ascending, "DESC": Descending, "descending": Descending} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Errorf("ParseDirection(%q) returned no error", "sideways")
	}
}
