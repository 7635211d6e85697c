package limiter

import (
	"context"

	"github.com/olusolaa/stack-tail/internal/core/ports"
	"golang.org/x/time/rate"
)

const (
	DefaultRateLimitRPS = 5
	minRateLimitRPS     = 1
	maxRateLimitRPS     = 100
)

// DefaultRateLimiter is a token bucket in front of CloudFormation calls.
// The follow engine already spaces ticks; this keeps a short --interval from
// tripping API throttling.
type DefaultRateLimiter struct {
	limiter *rate.Limiter
	rps     int
}

// New builds a limiter for rps requests per second. Out-of-range values fall
// back to DefaultRateLimitRPS; zero means "use the default" silently.
func New(rps int, logger ports.Logger) *DefaultRateLimiter {
	limitValue := DefaultRateLimitRPS
	if rps >= minRateLimitRPS && rps <= maxRateLimitRPS {
		limitValue = rps
	} else if rps != 0 {
		logger.Warnf(context.Background(), "Invalid AWS API RPS configured (%d), using default %d RPS. Valid range: %d-%d.", rps, DefaultRateLimitRPS, minRateLimitRPS, maxRateLimitRPS)
	}
	logger.Debugf(context.Background(), "Initialized AWS API rate limiter: %d RPS", limitValue)
	return &DefaultRateLimiter{
		limiter: rate.NewLimiter(rate.Limit(limitValue), limitValue),
		rps:     limitValue,
	}
}

func (l *DefaultRateLimiter) RPS() int {
	return l.rps
}

func (l *DefaultRateLimiter) Wait(ctx context.Context, logger ports.Logger) error {
	err := l.limiter.Wait(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warnf(ctx, "Error waiting for AWS API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
