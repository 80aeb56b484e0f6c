package middleware

import (
	pkgLog "task-tracker/pkg/log"
)

// Config tunes the middleware chain.
type Config struct {
	// RequestsPerMin is the per-client budget for rate limited routes; <= 0 disables limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
