package utils

import (
	"net/http"

	"github.com/osa911/inquiry-mailer/internal/api/constants"
	"github.com/osa911/inquiry-mailer/internal/api/dto/common"
	"github.com/osa911/inquiry-mailer/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError is a utility function for consistent error handling across the API.
// Client errors (4xx) answer with the message only. Server errors also carry
// the underlying error, except in release mode.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logging.GetLogger().LogHTTPError(
		c.GetString(constants.ContextKeyRequestID),
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)
	respondError(c, err, status, message)
}

// HandleServiceFault answers like HandleAPIError for an error the service
// has already logged, so the access log only gets status and request ID.
func HandleServiceFault(c *gin.Context, err error, status int, message string) {
	logging.GetLogger().LogHTTPFault(
		c.GetString(constants.ContextKeyRequestID),
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
	)
	respondError(c, err, status, message)
}

func respondError(c *gin.Context, err error, status int, message string) {
	if status < http.StatusInternalServerError {
		c.AbortWithStatusJSON(status, common.NewMessageResponse(message))
		return
	}

	// In production, don't expose error details
	var detail error
	if gin.Mode() != gin.ReleaseMode {
		detail = err
	}
	c.AbortWithStatusJSON(status, common.NewErrorResponse(message, detail))
}
