package middleware

import (
	"time"

	"github.com/osa911/inquiry-mailer/internal/api/constants"
	"github.com/osa911/inquiry-mailer/internal/logging"
	"github.com/osa911/inquiry-mailer/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request.
// It is a no-op unless request logging is enabled on the logger (LOG_REQUESTS=true).
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	if !logger.RequestsEnabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.GetString(constants.ContextKeyRequestID),
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
