package middleware

import (
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// GinCORSMiddleware adds CORS headers and answers preflight requests.
func GinCORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// GinLoggerMiddleware logs every request with latency, status and request id.
func GinLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logLine := fmt.Sprintf("%s %s %d %s %s",
			c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
		if reqID := GetRequestIDFromGin(c); reqID != "" {
			logLine += " [" + reqID + "]"
		}
		if err := c.Errors.Last(); err != nil {
			logLine += " error=" + err.Error()
		}
		log.Println(logLine)
	}
}

// GinRecoveryMiddleware turns panics into JSON 500 responses.
func GinRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				reqID := GetRequestIDFromGin(c)
				log.Printf("panic recovered: %v [%s]\n%s", err, reqID, debug.Stack())

				c.JSON(500, gin.H{
					"error":      true,
					"message":    "Internal server error",
					"request_id": reqID,
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
