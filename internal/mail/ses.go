package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
)

const charset = "UTF-8"

// sesAPI is the subset of the SES client used here.
type sesAPI interface {
	SendEmailWithContext(ctx aws.Context, input *ses.SendEmailInput, opts ...request.Option) (*ses.SendEmailOutput, error)
}

// SESSender delivers mail through Amazon SES. Sender addresses must be
// verified in SES beforehand.
type SESSender struct {
	client sesAPI
}

// NewSESSender creates an SES sender using the default AWS credential chain.
func NewSESSender(region string) (*SESSender, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &SESSender{client: ses.New(sess)}, nil
}

func (s *SESSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if _, err := s.client.SendEmailWithContext(ctx, buildSESInput(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s via SES: %w", msg.To, err)
	}
	return nil
}

func buildSESInput(msg Message) *ses.SendEmailInput {
	input := &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(msg.To)},
		},
		Message: &ses.Message{
			Subject: &ses.Content{
				Charset: aws.String(charset),
				Data:    aws.String(msg.Subject),
			},
			Body: &ses.Body{
				Html: &ses.Content{
					Charset: aws.String(charset),
					Data:    aws.String(msg.HTML),
				},
			},
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []*string{aws.String(msg.ReplyTo)}
	}
	return input
}
