package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/x7007x/hadithsearch"
)

// Ensure LoggingSearcher implements hadithsearch.Searcher.
var _ hadithsearch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with per-search logging.
type LoggingSearcher struct {
	next   hadithsearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next hadithsearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string, maxPages *int) (result *hadithsearch.SearchResult, err error) {
	defer func(begin time.Time) {
		count := 0
		if result != nil {
			count = len(result.Data)
		}
		s.logger.Info("search",
			"query", query,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, maxPages)
}
