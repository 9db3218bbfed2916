package wealth

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.5, "USD"), "$1,234.50"},
		{M(-3, "USD"), "-$3.00"},
		{M(12.345, ""), "12.35"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.m.Decimal(), got, tt.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
	if got := M(5, "USD").SignedString(); got != "+$5.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+$5.00")
	}
}

func TestPercent(t *testing.T) {
	if got := percentOf(D(1), D(3)); !got.Equal(33.3333) {
		t.Errorf("percentOf(1, 3) = %v, want 33.33", got)
	}
	if got := percentOf(D(1), D(0)); got != 0 {
		t.Errorf("percentOf(1, 0) = %v, want 0", got)
	}
	if got := Ratio(D(0.125)).String(); got != "12.50%" {
		t.Errorf("Ratio(0.125) = %q, want %q", got, "12.50%")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	b, err := M(12.345, "USD").MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if got, want := string(b), `{"currency":"USD","amount":"12.35"}`; got != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}
