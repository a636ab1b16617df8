package routes

import (
	"github.com/osa911/inquiry-mailer/internal/api/middleware"
	"github.com/osa911/inquiry-mailer/internal/logging"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// GlobalOptions configures middleware that applies to every route
type GlobalOptions struct {
	CORS         middleware.CORSConfig
	MaxBodyBytes int64
	// ServiceName enables otelgin tracing when non-empty
	ServiceName string
}

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware, logger *logging.Logger) {
	SetupHealthRoutes(router, h.Health)
	SetupInquiryRoutes(router, h.Inquiry, m)

	logger.Debug("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, opts GlobalOptions) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	if opts.ServiceName != "" {
		router.Use(otelgin.Middleware(opts.ServiceName))
	}
	router.Use(middleware.CORS(opts.CORS))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.LimitRequestBody(opts.MaxBodyBytes))
}
