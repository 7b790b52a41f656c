package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/ratelimit"
)

// RateLimit keys limiter by scope and client IP. denied renders the response
// and must abort the chain.
func RateLimit(limiter ratelimit.Limiter, scope string, metrics *HTTPMetrics, denied gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP()) {
			c.Next()
			return
		}
		metrics.recordRateLimitHit(scope)
		denied(c)
		c.Abort()
	}
}
