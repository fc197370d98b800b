package hadithsearch

import (
	"context"
	"net/url"
)

// Fetcher retrieves page bodies over HTTP.
// Implementations own connection reuse and default request headers.
type Fetcher interface {
	// Fetch performs a GET request against rawurl with the given query
	// parameters and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, rawurl string, params url.Values) (string, error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
