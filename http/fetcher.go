// Package http provides the HTTP transport used to fetch upstream search
// result pages.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/x7007x/hadithsearch"
)

// DefaultFetchTimeout is the default timeout for upstream requests.
const DefaultFetchTimeout = 30 * time.Second

// defaultHeaders are sent on every request. The upstream site serves the
// desktop markup the extractor expects only to browser-like agents.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
}

// Ensure Fetcher implements hadithsearch.Fetcher at compile time.
var _ hadithsearch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies over HTTP. A single Fetcher reuses its
// underlying connections and is safe for concurrent use.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET request against rawurl with the given query
// parameters and returns the response body. Network failures, timeouts,
// and non-2xx statuses all surface as EUNAVAILABLE errors so callers can
// distinguish upstream trouble from their own input.
func (f *Fetcher) Fetch(ctx context.Context, rawurl string, params url.Values) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", hadithsearch.Errorf(hadithsearch.EINVALID, "invalid URL %q: %v", rawurl, err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", hadithsearch.Errorf(hadithsearch.EINVALID, "building request for %q: %v", rawurl, err)
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", hadithsearch.Errorf(hadithsearch.EUNAVAILABLE, "GET %s: %v", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", hadithsearch.Errorf(hadithsearch.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, u)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", hadithsearch.Errorf(hadithsearch.EUNAVAILABLE, "reading response from %s: %v", u, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
