package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"scheduling-assistant/pkg/response"
)

// RateLimit throttles requests per session id (falling back to client IP
// when no session is resolved yet). Limiters for idle sessions age out of
// the LRU after five minutes.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.rateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	burst := m.rateLimitPerMin / 10
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(float64(m.rateLimitPerMin) / 60.0)
	limiters := expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute)

	return func(c *gin.Context) {
		key := SessionID(c)
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests. Please slow down.",
			})
			return
		}

		c.Next()
	}
}
