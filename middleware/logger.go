package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		mark := "✅"
		switch {
		case status >= 500:
			mark = "❌"
		case status >= 400:
			mark = "⚠️"
		}
		log.Printf("%s %s %s %d %s ip=%s req=%s",
			mark, c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP(), c.GetString(RequestIDKey))
	}
}
