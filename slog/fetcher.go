// Package slog provides log/slog-based logging decorators for the
// hadithsearch domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/x7007x/hadithsearch"
)

// Ensure LoggingFetcher implements hadithsearch.Fetcher.
var _ hadithsearch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   hadithsearch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next hadithsearch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, rawurl string, params url.Values) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", rawurl,
			"page", params.Get("page"),
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, rawurl, params)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
