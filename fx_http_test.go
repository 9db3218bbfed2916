package wealth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchRates(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/rates" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"data": {"rates": {"USD:NZD": 1.6}}}`)
	}))
	defer srv.Close()

	client := NewDailyClient(t.TempDir())
	for range 2 {
		rates, err := FetchRates(context.Background(), client, srv.URL+"/rates", "")
		if err != nil {
			t.Fatalf("FetchRates() error = %v", err)
		}
		if got := rates[CurrencyPair{"USD", "NZD"}]; !got.Equal(D(1.6)) {
			t.Errorf("FetchRates()[USD:NZD] = %v, want 1.6", got)
		}
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}

	for range 2 {
		if _, err := FetchRates(context.Background(), client, srv.URL+"/missing", ""); err == nil {
			t.Errorf("FetchRates() of a missing document returned no error")
		}
	}
	if hits != 3 {
		t.Errorf("server hits = %d, want 3, errors are not cached", hits)
	}
}

func TestIsURL(t *testing.T) {
	for source, want := range map[string]bool{
		"https://fx.example.com/latest": true,
		"http://localhost:8080":         true,
		"rates.json":                    false,
		"/tmp/http.json":                false,
	} {
		if got := IsURL(source); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", source, got, want)
		}
	}
}
