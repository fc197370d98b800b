package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultPageDelay is the pause observed between successive page fetches
// within one crawl, a rate-limiting courtesy to the upstream site.
const DefaultPageDelay = 1200 * time.Millisecond

// Limiter paces successive page fetches within a crawl session.
type Limiter interface {
	// Wait blocks until the next fetch is allowed.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context) error
}

// Ensure PageLimiter implements Limiter at compile time.
var _ Limiter = (*PageLimiter)(nil)

// PageLimiter enforces a fixed delay between page fetches using a token
// bucket with a burst of 1, so the first fetch is never delayed. A zero
// delay disables pacing, which tests rely on.
type PageLimiter struct {
	limiter *rate.Limiter
}

// NewPageLimiter creates a PageLimiter that waits delay between fetches.
func NewPageLimiter(delay time.Duration) *PageLimiter {
	return &PageLimiter{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the rate limit allows the next fetch.
func (l *PageLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
