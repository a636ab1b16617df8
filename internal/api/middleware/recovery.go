package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/osa911/inquiry-mailer/internal/api/constants"
	"github.com/osa911/inquiry-mailer/internal/api/dto/common"
	"github.com/osa911/inquiry-mailer/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 and logs the stack
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("[PANIC] %s %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString(constants.ContextKeyRequestID),
					rec,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewMessageResponse("Internal server error"))
			}
		}()

		c.Next()
	}
}
