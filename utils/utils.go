package utils

import (
	"time"

	"Playhub/utils/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, status and latency of each request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		logger.Log.Infow("request",
			"status", c.Writer.Status(),
			"latency", latency,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}
}

// ErrorHandler answers errors attached with c.Error when the handler did
// not write a response itself
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RespondError(c, c.Errors.Last().Err)
	}
}
