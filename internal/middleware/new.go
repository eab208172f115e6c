package middleware

import (
	"time"

	"todo-list/pkg/log"
)

// Config holds the tunables of the request middlewares.
type Config struct {
	RateLimitEnabled   bool
	RateLimitPerMin    int
	RateLimitMaxClient int
	RateLimitTTL       time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitMaxClient, cfg.RateLimitTTL)
	}
	return mw
}
