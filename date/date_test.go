package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", New(2025, time.July, 1)},
		{"2025-7-1", New(2025, time.July, 1)},
		{"2024-12-31T23:10:00Z", New(2024, time.December, 31)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := Parse("yesterday"); err == nil {
		t.Errorf("Parse(%q) expected an error", "yesterday")
	}
}

func TestJSON(t *testing.T) {
	var v struct {
		A Date `json:"a"`
		B Date `json:"b"`
		C Date `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":"2025-01-02","b":null,"c":""}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.A != New(2025, time.January, 2) {
		t.Errorf("A = %v, want 2025-01-02", v.A)
	}
	if !v.B.IsZero() || !v.C.IsZero() {
		t.Errorf("B, C = %v, %v, want zero dates", v.B, v.C)
	}

	got, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"a":"2025-01-02","b":null,"c":null}`; string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
