package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tipcast.app/frames/internal/ratelimit"
)

var rateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "frames_rate_limit_rejections_total",
	Help: "Requests rejected by the fixed-window rate limiter.",
}, []string{"class"})

// RateLimit gates a route group with one limiter instance. The identifier is
// the client IP; it is the only identifier available before a body has been
// validated. Rejections carry the standard limit headers plus Retry-After.
func RateLimit(limiter *ratelimit.Limiter, class string) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := limiter.Check(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.ResetAt.IsZero() {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
		}

		if !res.Allowed {
			rateLimitRejections.WithLabelValues(class).Inc()
			retryAfter := max(int64(time.Until(res.ResetAt).Seconds()), 1)
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
