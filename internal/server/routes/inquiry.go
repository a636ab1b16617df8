package routes

import (
	"github.com/osa911/inquiry-mailer/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupInquiryRoutes configures the public contact form endpoint
func SetupInquiryRoutes(router *gin.Engine, inquiry *handlers.InquiryHandler, m *Middleware) {
	router.POST("/send-email",
		m.Validation.ValidateInquiryRequest(),
		inquiry.SendEmail,
	)
}
