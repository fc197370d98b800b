package hadithsearch

import "context"

// SearchResult is the aggregate outcome of one search: the deduplicated
// records in discovery order plus the statistics derived from them.
type SearchResult struct {
	Stats Stats     `json:"stats"`
	Data  []*Hadith `json:"data"`
}

// Searcher runs a full multi-page search against the upstream site.
type Searcher interface {
	// Search crawls result pages for query starting at page 1 and returns
	// the deduplicated records together with their stats. maxPages, when
	// non-nil, caps the number of pages fetched; values below 1 are
	// treated as 1. An empty query returns an EINVALID error before any
	// fetch occurs.
	Search(ctx context.Context, query string, maxPages *int) (*SearchResult, error)
}
