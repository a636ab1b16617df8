package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osa911/inquiry-mailer/internal/api/handlers"
	"github.com/osa911/inquiry-mailer/internal/api/middleware"
	"github.com/osa911/inquiry-mailer/internal/config"
	"github.com/osa911/inquiry-mailer/internal/logging"
	"github.com/osa911/inquiry-mailer/internal/server/routes"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *logging.Logger
}

// NewServer creates a new server instance serving the inquiry workflow
func NewServer(cfg *config.Config, logger *logging.Logger, inquiryService handlers.InquirySubmitter) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	opts := routes.GlobalOptions{
		CORS: middleware.CORSConfig{
			Permissive:     !cfg.IsProduction(),
			AllowedOrigins: cfg.AllowedOrigins,
		},
		MaxBodyBytes: cfg.MaxBodyBytes,
	}
	if cfg.TracingEnabled() {
		opts.ServiceName = cfg.ServiceName
	}
	routes.SetupGlobalMiddleware(router, logger, opts)

	routes.Setup(router,
		&routes.Handlers{
			Inquiry: handlers.NewInquiryHandler(inquiryService),
			Health:  handlers.NewHealthHandler(),
		},
		&routes.Middleware{
			Validation: middleware.NewValidationMiddleware(),
		},
		logger,
	)

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Two sequential SMTP sends plus verification can be slow
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening at http://localhost:%s", s.cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
