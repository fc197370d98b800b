// Package crawl implements the page-by-page search crawl over upstream
// search results: fetch, parse, extract, then decide whether to continue.
package crawl

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/x7007x/hadithsearch"
)

// DefaultBaseURL is the upstream site all searches run against.
const DefaultBaseURL = "https://sunnah.com"

// searchPath is the upstream search endpoint.
const searchPath = "/search"

// resultBlockMatcher selects the repeated result-block containers on a
// search results page.
var resultBlockMatcher = hadithsearch.Matcher{Tag: "div", Class: "boh"}

// Ensure Searcher implements hadithsearch.Searcher at compile time.
var _ hadithsearch.Searcher = (*Searcher)(nil)

// Searcher crawls upstream search result pages. Pages within one crawl
// are always fetched strictly in order because deduplication and the
// stopping rules depend on it; distinct Search calls may run concurrently
// as long as the Fetcher is safe for concurrent use.
type Searcher struct {
	Fetcher hadithsearch.Fetcher
	Parser  hadithsearch.Parser

	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string

	// Limiter paces successive page fetches. A nil Limiter disables
	// pacing entirely.
	Limiter Limiter
}

// FetchPage fetches and extracts a single results page. Only records with
// a canonical reference are kept; every other field is best-effort.
func (s *Searcher) FetchPage(ctx context.Context, query string, page int) ([]*hadithsearch.Hadith, hadithsearch.Pagination, error) {
	base := s.baseURL()

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))

	body, err := s.Fetcher.Fetch(ctx, base.String()+searchPath, params)
	if err != nil {
		return nil, hadithsearch.DefaultPagination(), err
	}

	doc, err := s.Parser.Parse(body)
	if err != nil {
		return nil, hadithsearch.DefaultPagination(), err
	}

	pagination := hadithsearch.ReadPagination(doc)

	var hadiths []*hadithsearch.Hadith
	for _, block := range doc.FindAll(resultBlockMatcher) {
		h := hadithsearch.ExtractHadith(block, base)
		if !h.HasReference() {
			continue
		}
		h.Page = page
		hadiths = append(hadiths, h)
	}

	return hadiths, pagination, nil
}

// CrawlAll walks result pages starting at startPage, deduplicating
// records by their canonical reference: the first occurrence wins and
// later duplicates are silently dropped. The crawl stops at the first
// page that yields zero records, when the page cap is reached, or when
// the pager reports no next page. A maxPages below 1 is treated as 1, so
// at least one page is always fetched. Fetch failures are not retried;
// they abort the crawl immediately.
func (s *Searcher) CrawlAll(ctx context.Context, query string, startPage int, maxPages *int) ([]*hadithsearch.Hadith, error) {
	if startPage < 1 {
		startPage = 1
	}

	pageCap := 0
	if maxPages != nil {
		pageCap = *maxPages
		if pageCap < 1 {
			pageCap = 1
		}
	}

	all := []*hadithsearch.Hadith{}
	seen := make(map[string]bool)

	for page := startPage; ; page++ {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		hadiths, pagination, err := s.FetchPage(ctx, query, page)
		if err != nil {
			return nil, err
		}
		if len(hadiths) == 0 {
			break
		}

		for _, h := range hadiths {
			if seen[h.Reference] {
				continue
			}
			seen[h.Reference] = true
			all = append(all, h)
		}

		if pageCap > 0 && page >= startPage+pageCap-1 {
			break
		}
		if !pagination.HasNext {
			break
		}
	}

	return all, nil
}

// Search runs the full crawl for query starting at page 1 and aggregates
// statistics over the deduplicated records.
func (s *Searcher) Search(ctx context.Context, query string, maxPages *int) (*hadithsearch.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, hadithsearch.Errorf(hadithsearch.EINVALID, "search query required")
	}

	hadiths, err := s.CrawlAll(ctx, query, 1, maxPages)
	if err != nil {
		return nil, err
	}

	return &hadithsearch.SearchResult{
		Stats: hadithsearch.BuildStats(hadiths),
		Data:  hadiths,
	}, nil
}

// baseURL parses the configured base URL, falling back to the default
// when unset or unparseable.
func (s *Searcher) baseURL() *url.URL {
	raw := s.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		u, _ = url.Parse(DefaultBaseURL)
	}
	return u
}
