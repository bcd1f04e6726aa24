package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/findme/internal/pkg/response"
)

// KeyFunc picks the bucket a request counts against. An empty key falls
// back to the client IP.
type KeyFunc func(c *gin.Context) string

// ByIP buckets requests per client address.
func ByIP(c *gin.Context) string { return c.ClientIP() }

// ByContextKey buckets requests by a string another middleware stored on
// the gin context (e.g. the session id).
func ByContextKey(key string) KeyFunc {
	return func(c *gin.Context) string { return c.GetString(key) }
}

// Middleware creates a rate limiting middleware for Gin
func Middleware(limiter *RateLimiter, keyFunc KeyFunc) gin.HandlerFunc {
	if keyFunc == nil {
		keyFunc = ByIP
	}
	limit := strconv.Itoa(limiter.Limit())

	return func(c *gin.Context) {
		key := keyFunc(c)
		if key == "" {
			key = c.ClientIP()
		}

		if !limiter.Allow(key) {
			resetTime := limiter.GetResetTime(key)
			retryAfter := int(math.Ceil(time.Until(resetTime).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", limit)
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			response.ErrorWithData(c, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.", "RATE_LIMITED", gin.H{
				"retry_after": strconv.Itoa(retryAfter) + "s",
				"reset_time":  resetTime.Format(time.RFC3339),
				"limit":       limiter.Limit(),
				"remaining":   0,
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.GetRemaining(key)))
		c.Header("X-RateLimit-Reset", limiter.GetResetTime(key).Format(time.RFC3339))

		c.Next()
	}
}
