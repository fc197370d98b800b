package hadithsearch

import (
	"regexp"
	"strconv"
)

// resultsPerPage is the fixed page size the upstream search uses.
const resultsPerPage = 100

// showingRe matches the "Showing X-Y of Z" results window indicator.
var showingRe = regexp.MustCompile(`Showing\s+(\d+)-(\d+)\s+of\s+(\d+)`)

// Pagination describes the paging state of one search results page. It is
// recomputed from scratch for every page fetched and never carried over.
type Pagination struct {
	TotalResults  int  `json:"total_results"`
	CurrentPage   int  `json:"current_page"`
	TotalPages    int  `json:"total_pages"`
	ResultsOnPage int  `json:"results_on_page"`
	HasNext       bool `json:"has_next"`
	HasPrevious   bool `json:"has_previous"`
}

// DefaultPagination returns the state assumed for a page that carries no
// pagination markup at all: a single page with no neighbours.
func DefaultPagination() Pagination {
	return Pagination{CurrentPage: 1, TotalPages: 1}
}

// ReadPagination extracts the paging indicators from a full results page.
// Missing or unparseable markers leave the defaults in place; it never
// fails.
func ReadPagination(page Node) Pagination {
	p := DefaultPagination()

	if s, ok := page.FindString(showingRe); ok {
		if m := showingRe.FindStringSubmatch(s); m != nil {
			start, _ := strconv.Atoi(m[1])
			end, _ := strconv.Atoi(m[2])
			total, _ := strconv.Atoi(m[3])
			p.TotalResults = total
			p.ResultsOnPage = end - start + 1
			p.TotalPages = (total + resultsPerPage - 1) / resultsPerPage
		}
	}

	pager, ok := page.FindFirst(Matcher{Tag: "ul", Class: "yiiPager"})
	if !ok {
		return p
	}

	if cur, ok := pager.FindFirst(Matcher{Tag: "li", Class: "page selected"}); ok {
		if link, ok := cur.FindFirst(Matcher{Tag: "a"}); ok {
			if n, err := strconv.Atoi(link.Text()); err == nil {
				p.CurrentPage = n
			}
		}
	}

	// Next/previous controls are present on every paged result set; the
	// unavailable direction is marked with a "hidden" class.
	if next, ok := pager.FindFirst(Matcher{Tag: "li", Class: "next"}); ok && !next.HasClass("hidden") {
		p.HasNext = true
	}
	if prev, ok := pager.FindFirst(Matcher{Tag: "li", Class: "previous"}); ok && !prev.HasClass("hidden") {
		p.HasPrevious = true
	}

	return p
}
