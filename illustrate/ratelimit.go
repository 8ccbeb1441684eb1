package illustrate

import (
	"context"
	"time"

	"github.com/fwojciec/artdoc"
	"golang.org/x/time/rate"
)

var _ artdoc.Limiter = (*RateLimiter)(nil)

// RateLimiter spaces out calls to a model provider using a token bucket
// with a burst of 1.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a RateLimiter allowing perMinute calls per minute.
// Zero or negative disables limiting.
func NewRateLimiter(perMinute int) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the rate limit allows a call.
// Returns an error if the context is canceled before the wait completes.
func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
