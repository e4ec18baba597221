package middleware

import (
	"rag-assistant/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	CORSOrigins    []string
	RequestsPerMin int // 0 disables rate limiting
}

type Middleware struct {
	l           log.Logger
	corsOrigins []string
	limiter     *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:           l,
		corsOrigins: cfg.CORSOrigins,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
