package routes

import (
	"github.com/osa911/inquiry-mailer/internal/api/handlers"
	"github.com/osa911/inquiry-mailer/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Inquiry *handlers.InquiryHandler
	Health  *handlers.HealthHandler
}

// Middleware contains all the per-route middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
