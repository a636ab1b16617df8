// Package mail delivers HTML email through a pluggable provider.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/osa911/inquiry-mailer/internal/config"
	"github.com/osa911/inquiry-mailer/internal/logging"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	ReplyTo string // optional
	Subject string
	HTML    string
}

// Sender delivers a message. Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ErrInvalidMessage is returned when a message lacks a sender, recipient or subject.
var ErrInvalidMessage = errors.New("invalid mail message")

// Validate reports whether the message carries the headers every provider needs.
func (m Message) Validate() error {
	switch {
	case m.From == "":
		return fmt.Errorf("%w: missing sender", ErrInvalidMessage)
	case m.To == "":
		return fmt.Errorf("%w: missing recipient", ErrInvalidMessage)
	case m.Subject == "":
		return fmt.Errorf("%w: missing subject", ErrInvalidMessage)
	}
	return nil
}

// NewSender builds the provider selected by cfg.Provider.
func NewSender(cfg config.MailConfig, logger *logging.Logger) (Sender, error) {
	switch cfg.Provider {
	case config.ProviderSMTP:
		return NewSMTPSender(SMTPConfig{
			Host:               cfg.SMTPHost,
			Port:               cfg.SMTPPort,
			Username:           cfg.User,
			Password:           cfg.Password,
			Timeout:            cfg.SMTPTimeout,
			InsecureSkipVerify: cfg.SMTPInsecureSkipVerify,
		})
	case config.ProviderSES:
		return NewSESSender(cfg.AWSRegion)
	case config.ProviderLog:
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("unsupported mail provider: %s", cfg.Provider)
	}
}
