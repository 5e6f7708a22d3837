package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "chat-with-search/pkg/log"
)

const (
	// limiterCacheSize bounds how many distinct clients are tracked.
	limiterCacheSize = 1000
	// limiterTTL evicts limiters for clients that went quiet.
	limiterTTL = 5 * time.Minute
)

type Middleware struct {
	l               pkgLog.Logger
	rateLimitPerMin int
	limiters        *expirable.LRU[string, *rate.Limiter]
}

// New creates the middleware set with a per-client limiter cache.
func New(l pkgLog.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
		limiters:        expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
	}
}
