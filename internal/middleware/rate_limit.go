package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"chat-with-search/pkg/response"
)

// RateLimit enforces a per-client request budget, keyed by client IP.
// Tokens refill continuously at rateLimitPerMin per minute with a burst
// of the full budget, so a client gets rateLimitPerMin requests in any
// one-minute window before hitting 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimitPerMin <= 0 {
			c.Next()
			return
		}

		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c, "Rate limit exceeded. Try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m Middleware) limiterFor(key string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(key); ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(float64(m.rateLimitPerMin)/60.0), m.rateLimitPerMin)
	m.limiters.Add(key, limiter)
	return limiter
}
