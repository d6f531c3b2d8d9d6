package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// GinRateLimitMiddleware throttles a route with a shared token bucket.
// Exports render a full workbook per request, so the export route caps how
// fast a stuck client can burn CPU; everything else stays unthrottled.
func GinRateLimitMiddleware(perSec float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(perSec), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "Too many export requests, try again shortly",
			})
			return
		}
		c.Next()
	}
}
