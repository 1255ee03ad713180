package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request through logrus.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("[http] request")
		case c.Writer.Status() >= 400:
			entry.Warn("[http] request")
		default:
			entry.Info("[http] request")
		}
	}
}

// Recovery turns panics into a 500 and logs them.
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("path", c.Request.URL.Path).Errorf("[http] panic recovered: %v", recovered)
		c.AbortWithStatusJSON(500, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
	})
}
