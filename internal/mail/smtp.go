package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds the connection settings for an SMTP relay.
type SMTPConfig struct {
	Host               string
	Port               int
	Username           string
	Password           string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// SMTPSender delivers mail through an authenticated relay. Port 465 uses
// implicit TLS; every other port must offer STARTTLS.
type SMTPSender struct {
	client *gomail.Client
}

// NewSMTPSender creates a new SMTP sender. Host and port are required.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.Port <= 0 {
		return nil, fmt.Errorf("SMTP host and port are required")
	}

	// The port policy rewrites default ports, so the configured port goes last.
	var opts []gomail.Option
	if cfg.Port == gomail.DefaultPortSSL {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	}
	opts = append(opts,
		gomail.WithTLSConfig(&tls.Config{
			ServerName:         cfg.Host,
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: cfg.InsecureSkipVerify, // #nosec G402 -- opt-in via SMTP_INSECURE_SKIP_VERIFY
		}),
		gomail.WithPort(cfg.Port),
	)
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &SMTPSender{client: client}, nil
}

// Send dials the relay and delivers msg over a fresh connection.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildSMTPMessage(msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

func buildSMTPMessage(msg Message) (*gomail.Msg, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	return m, nil
}
