package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x7007x/hadithsearch"
	hadithslog "github.com/x7007x/hadithsearch/slog"
	"github.com/x7007x/hadithsearch/mock"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the request", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, _ url.Values) (string, error) {
				return "<html></html>", nil
			},
		}

		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))
		fetcher := hadithslog.NewLoggingFetcher(next, logger)

		params := url.Values{}
		params.Set("page", "3")

		body, err := fetcher.Fetch(context.Background(), "https://sunnah.com/search", params)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", body)
		assert.Contains(t, buf.String(), "fetch")
		assert.Contains(t, buf.String(), "page=3")
	})

	t.Run("logs errors from the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, _ url.Values) (string, error) {
				return "", hadithsearch.Errorf(hadithsearch.EUNAVAILABLE, "HTTP 503")
			},
		}

		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))
		fetcher := hadithslog.NewLoggingFetcher(next, logger)

		_, err := fetcher.Fetch(context.Background(), "https://sunnah.com/search", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "unavailable")
	})
}

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	next := &mock.Searcher{
		SearchFn: func(_ context.Context, _ string, _ *int) (*hadithsearch.SearchResult, error) {
			return &hadithsearch.SearchResult{
				Data: []*hadithsearch.Hadith{{Reference: "Sahih al-Bukhari 1"}},
			}, nil
		},
	}

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	searcher := hadithslog.NewLoggingSearcher(next, logger)

	result, err := searcher.Search(context.Background(), "prayer", nil)

	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Contains(t, buf.String(), "query=prayer")
	assert.Contains(t, buf.String(), "count=1")
}
