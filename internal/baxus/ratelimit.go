package baxus

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/Ebun22/baxus-price-checker/internal/metrics"
)

// ErrBurstExceeded is returned when a single request can never be served
// by the configured burst size.
var ErrBurstExceeded = errors.New("request exceeds limiter burst")

// RateLimiter paces catalog API calls with a per-minute token bucket.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter allowing perMinute calls per
// minute with the given burst size.
func NewRateLimiter(perMinute float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perMinute/60.0), burst),
	}
}

// Wait blocks until the limiter allows the call or the context is
// canceled. Calls that had to queue are counted.
func (r *RateLimiter) Wait(ctx context.Context) error {
	res := r.limiter.Reserve()
	if !res.OK() {
		return ErrBurstExceeded
	}

	delay := res.Delay()
	if delay == 0 {
		return nil
	}

	metrics.CatalogRateLimitWaits.Inc()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		res.Cancel()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
