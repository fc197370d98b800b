package mock

import (
	"context"
	"net/url"

	"github.com/x7007x/hadithsearch"
)

var _ hadithsearch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of hadithsearch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, rawurl string, params url.Values) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, rawurl string, params url.Values) (string, error) {
	return f.FetchFn(ctx, rawurl, params)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
