package limiter

import (
	"context"
	"sync"

	"github.com/skylift/resourcekit/internal/core/ports"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimitRPS = 20
	minRateLimitRPS     = 1
	maxRateLimitRPS     = 100
)

var (
	apiLimiter  *rate.Limiter
	limiterOnce sync.Once
)

// Initialize sets up the process-wide AWS API rate limiter. Out-of-range
// values fall back to the default. Only the first call takes effect.
func Initialize(rps int, logger ports.Logger) {
	limiterOnce.Do(func() {
		limitValue := defaultRateLimitRPS
		if rps >= minRateLimitRPS && rps <= maxRateLimitRPS {
			limitValue = rps
		} else if rps != 0 {
			logger.Warnf(nil, "Invalid AWS API RPS configured (%d), using default %d RPS. Valid range: %d-%d.",
				rps, defaultRateLimitRPS, minRateLimitRPS, maxRateLimitRPS)
		}
		apiLimiter = rate.NewLimiter(rate.Limit(limitValue), limitValue)
		logger.Infof(nil, "Initialized AWS API rate limiter: %d RPS", limitValue)
	})
}

// Wait blocks until the limiter grants a slot or ctx is done.
func Wait(ctx context.Context, logger ports.Logger) error {
	if apiLimiter == nil {
		logger.Warnf(ctx, "AWS API rate limiter accessed before initialization, using default rate")
		Initialize(defaultRateLimitRPS, logger)
	}
	if err := apiLimiter.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			logger.Warnf(ctx, "Error waiting for AWS API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
