package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/osa911/inquiry-mailer/internal/api/constants"
	"github.com/osa911/inquiry-mailer/internal/api/dto/v1/inquiry"
	"github.com/osa911/inquiry-mailer/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const msgInvalidBody = "Invalid request body."

// ValidationMiddleware decodes request bodies before they reach handlers.
// Field rules are enforced by the service so that their order is preserved.
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidateInquiryRequest decodes a JSON inquiry into the context.
// An empty body decodes to an empty request.
func (m *ValidationMiddleware) ValidateInquiryRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inquiry.SendEmailRequest

		if err := c.ShouldBindWith(&req, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				utils.HandleAPIError(c, err, http.StatusRequestEntityTooLarge, "Request body too large.")
				return
			}
			utils.HandleAPIError(c, err, http.StatusBadRequest, msgInvalidBody)
			return
		}

		c.Set(constants.ContextKeyInquiry, &req)
		c.Next()
	}
}
