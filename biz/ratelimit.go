package biz

import (
	"golang.org/x/time/rate"

	"github.com/vearne/pcapdump/config"
)

type Limiter interface {
	Allow() bool
}

func NewRateLimit(settings *config.AppSettings) Limiter {
	if settings.RateLimitQPS > 0 {
		value := settings.RateLimitQPS
		return rate.NewLimiter(rate.Limit(value), value)
	}
	return nil
}
