package mock

import (
	"context"

	"github.com/x7007x/hadithsearch"
)

var _ hadithsearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of hadithsearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, maxPages *int) (*hadithsearch.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, maxPages *int) (*hadithsearch.SearchResult, error) {
	return s.SearchFn(ctx, query, maxPages)
}
