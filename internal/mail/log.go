package mail

import (
	"context"

	"github.com/osa911/inquiry-mailer/internal/logging"
)

// LogSender logs emails instead of sending them.
// Useful for development and testing.
type LogSender struct {
	logger *logging.Logger
}

// NewLogSender creates a new log-based email sender.
func NewLogSender(logger *logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the email details.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	s.logger.Info(`
================================================================================
EMAIL (dev mode - not actually sent)
================================================================================
From:     %s
To:       %s
Reply-To: %s
Subject:  %s
--------------------------------------------------------------------------------
%s
================================================================================`,
		msg.From, msg.To, msg.ReplyTo, msg.Subject, msg.HTML)
	return nil
}
