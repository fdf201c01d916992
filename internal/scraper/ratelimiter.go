package scraper

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/civicwatch/triage/internal/logger"
)

const defaultRPS = 5

// RateLimiter paces outbound platform fetches so the scraper stays inside
// upstream quotas.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  logger.Logger
}

// NewRateLimiter creates a rate limiter. rps is fetches per second, burst is
// the maximum burst size; burst defaults to rps.
func NewRateLimiter(rps, burst int, log logger.Logger) *RateLimiter {
	if rps <= 0 {
		rps = defaultRPS
	}
	if burst <= 0 {
		burst = rps
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  log,
	}
}

// Wait blocks until the rate limit allows another fetch.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		r.logger.Warn("rate limiter wait failed", logger.Error(err))
		return err
	}
	return nil
}

// Allow reports whether a fetch may proceed without waiting.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// SetLimit updates the fetch rate.
func (r *RateLimiter) SetLimit(rps int) {
	r.limiter.SetLimit(rate.Limit(rps))
	r.logger.Info("scraper rate limit updated", logger.Int("rps", rps))
}
