package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/osa911/inquiry-mailer/internal/config"
	"github.com/osa911/inquiry-mailer/internal/logging"
	"github.com/osa911/inquiry-mailer/internal/mail"
	"github.com/osa911/inquiry-mailer/internal/server"
	"github.com/osa911/inquiry-mailer/internal/service"
	"github.com/osa911/inquiry-mailer/internal/telemetry"
	"github.com/osa911/inquiry-mailer/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inquiry-mailer",
	Short: "Contact form backend that emails the firm and acknowledges the sender",
	Long: `inquiry-mailer accepts contact form submissions on POST /send-email,
optionally verifies a reCAPTCHA token, then emails the firm and sends an
acknowledgment to the submitter.

Configuration is read from the environment and from .env files.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().String("port", "", "listening port (overrides PORT)")
		cmd.Flags().String("env", "", "environment name (overrides ENV)")
	}
	rootCmd.AddCommand(serveCmd, versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if envName, _ := cmd.Flags().GetString("env"); envName != "" {
		os.Setenv("ENV", envName)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	if err := logging.InitLogger(cfg.LoggingConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting inquiry-mailer %s in %s mode", version.Info(), cfg.Environment)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	sender, err := mail.NewSender(cfg.Mail, logger)
	if err != nil {
		return fmt.Errorf("failed to create mail sender: %w", err)
	}
	logger.Info("Mail provider: %s", cfg.Mail.Provider)

	var verifier service.Verifier
	if cfg.Recaptcha.Enabled {
		verifier = service.NewRecaptchaService(cfg.Recaptcha)
	} else {
		logger.Warn("reCAPTCHA verification is disabled")
	}

	inquiryService, err := service.NewInquiryService(service.InquiryConfig{
		ServiceAccount:   cfg.Mail.User,
		FirmInbox:        cfg.Mail.FirmInbox,
		FirmName:         cfg.Mail.FirmName,
		RequireRecaptcha: cfg.Recaptcha.Enabled,
	}, sender, verifier, logger)
	if err != nil {
		return err
	}

	return server.NewServer(cfg, logger, inquiryService).Start(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
