package wealth

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/wealth/date"
)

// dailyCache is an http.RoundTripper keeping successful responses on disk
// for the rest of the day.
type dailyCache struct {
	base http.RoundTripper
	dir  string
}

func (c *dailyCache) RoundTrip(req *http.Request) (*http.Response, error) {
	// the day is part of the key, so entries expire every day.
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL)
	file := filepath.Join(c.dir, fmt.Sprintf("wealth-%x", sha1.Sum([]byte(key))))

	if content, err := os.ReadFile(file); err == nil {
		if resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req); err == nil {
			return resp, nil
		}
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil || resp.StatusCode >= 300 {
		return resp, err
	}
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return resp, nil
	}
	_ = os.WriteFile(file, content, 0o600) // a failed write only costs a new request
	return resp, nil
}

// NewDailyClient returns an http client caching responses in dir until the
// end of the day. An empty dir is the temporary directory.
func NewDailyClient(dir string) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	return &http.Client{Transport: &dailyCache{base: http.DefaultTransport, dir: dir}}
}

// IsURL tells whether a rates source is an http(s) address rather than a file.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// FetchRates gets an FX service response and decodes it, see DecodeRates.
func FetchRates(ctx context.Context, client *http.Client, url, jsonPath string) (Rates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid rates url %q: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot get rates from %q: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot get rates from %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	rates, err := DecodeRates(resp.Body, jsonPath)
	if err != nil {
		return nil, fmt.Errorf("could not load rates from %q: %w", url, err)
	}
	return rates, nil
}
