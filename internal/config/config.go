package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osa911/inquiry-mailer/internal/config/env"
	"github.com/osa911/inquiry-mailer/internal/logging"

	envparse "github.com/caarlos0/env/v10"
)

// Mail providers
const (
	ProviderSMTP = "smtp"
	ProviderSES  = "ses"
	ProviderLog  = "log"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment  string `env:"ENV" envDefault:"development"`
	Port         string `env:"PORT" envDefault:"3000"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"65536"`

	// CORS Configuration
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE" envDefault:"./logs/api.log"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
	LogRequests   bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Mail Configuration
	Mail MailConfig

	// reCAPTCHA Configuration
	Recaptcha RecaptchaConfig

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"inquiry-mailer"`
}

// MailConfig describes the service account and the delivery provider
type MailConfig struct {
	Provider  string `env:"MAIL_PROVIDER" envDefault:"smtp"`
	User      string `env:"EMAIL_USER"`
	Password  string `env:"EMAIL_PASS"`
	FirmInbox string `env:"FIRM_INBOX"`
	FirmName  string `env:"FIRM_NAME" envDefault:"Inciarte & Gonzalez Abogados"`

	SMTPHost               string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort               int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPTimeout            time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
	SMTPInsecureSkipVerify bool          `env:"SMTP_INSECURE_SKIP_VERIFY" envDefault:"false"`

	AWSRegion string `env:"AWS_REGION" envDefault:"us-east-1"`
}

// RecaptchaConfig configures the anti-abuse verification step
type RecaptchaConfig struct {
	Enabled   bool    `env:"RECAPTCHA_ENABLED" envDefault:"true"`
	SecretKey string  `env:"RECAPTCHA_SECRET_KEY"`
	MinScore  float64 `env:"RECAPTCHA_MIN_SCORE" envDefault:"0"`
	VerifyURL string  `env:"RECAPTCHA_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	if _, err := env.LoadEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := envparse.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Mail.Provider = strings.ToLower(strings.TrimSpace(c.Mail.Provider))
	if c.Mail.FirmInbox == "" {
		c.Mail.FirmInbox = c.Mail.User
	}
	for i, origin := range c.AllowedOrigins {
		c.AllowedOrigins[i] = strings.TrimSpace(origin)
	}
}

// Validate checks the invariants the rest of the program relies on
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}

	if c.Mail.User == "" {
		errs = append(errs, errors.New("EMAIL_USER is required"))
	}
	switch c.Mail.Provider {
	case ProviderSMTP:
		if c.Mail.Password == "" {
			errs = append(errs, errors.New("EMAIL_PASS is required for the smtp provider"))
		}
		if c.Mail.SMTPHost == "" || c.Mail.SMTPPort <= 0 {
			errs = append(errs, errors.New("SMTP_HOST and SMTP_PORT are required for the smtp provider"))
		}
	case ProviderSES:
		if c.Mail.AWSRegion == "" {
			errs = append(errs, errors.New("AWS_REGION is required for the ses provider"))
		}
	case ProviderLog:
	default:
		errs = append(errs, fmt.Errorf("unknown MAIL_PROVIDER %q", c.Mail.Provider))
	}

	if c.Recaptcha.Enabled && c.Recaptcha.SecretKey == "" {
		errs = append(errs, errors.New("RECAPTCHA_SECRET_KEY is required when reCAPTCHA is enabled"))
	}
	if c.Recaptcha.MinScore < 0 || c.Recaptcha.MinScore > 1 {
		errs = append(errs, errors.New("RECAPTCHA_MIN_SCORE must be between 0 and 1"))
	}

	if len(errs) > 0 {
		return logging.WrapError(errors.Join(errs...), "invalid configuration")
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoggingConfig maps the flat environment settings onto the logger config
func (c *Config) LoggingConfig() *logging.Config {
	return &logging.Config{
		Level:      strings.ToLower(c.LogLevel),
		File:       c.LogFile,
		MaxSize:    c.LogMaxSize,
		MaxBackups: c.LogMaxBackups,
		MaxAge:     c.LogMaxAge,
		Requests:   c.LogRequests,
	}
}

// TracingEnabled reports whether an OTLP collector endpoint is configured
func (c *Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}
