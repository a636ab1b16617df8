package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/osa911/inquiry-mailer/internal/api/validation"
	"github.com/osa911/inquiry-mailer/internal/logging"
	"github.com/osa911/inquiry-mailer/internal/mail"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/osa911/inquiry-mailer/internal/service"

// Submission is one contact-form submission. It is never stored.
type Submission struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Subject        string `json:"subject" validate:"required"`
	Message        string `json:"message" validate:"required"`
	RecaptchaToken string `json:"g-recaptcha-response"`

	// Request metadata, used for verification and logs only
	RemoteIP  string `json:"-"`
	RequestID string `json:"-"`
}

// InquiryConfig is the static mail identity of the firm
type InquiryConfig struct {
	ServiceAccount   string
	FirmInbox        string
	FirmName         string
	RequireRecaptcha bool
}

// InquiryService validates submissions and sends the notification and
// acknowledgment emails, strictly in that order.
type InquiryService struct {
	cfg      InquiryConfig
	sender   mail.Sender
	verifier Verifier
	validate *validator.Validate
	logger   *logging.Logger
	tracer   trace.Tracer
}

// NewInquiryService wires the dispatcher. verifier may be nil only when
// reCAPTCHA is not required.
func NewInquiryService(cfg InquiryConfig, sender mail.Sender, verifier Verifier, logger *logging.Logger) (*InquiryService, error) {
	if sender == nil {
		return nil, errors.New("mail sender is required")
	}
	if cfg.RequireRecaptcha && verifier == nil {
		return nil, errors.New("verifier is required when reCAPTCHA is enabled")
	}
	if cfg.ServiceAccount == "" {
		return nil, errors.New("service account address is required")
	}
	if cfg.FirmInbox == "" {
		cfg.FirmInbox = cfg.ServiceAccount
	}

	return &InquiryService{
		cfg:      cfg,
		sender:   sender,
		verifier: verifier,
		validate: validation.New(),
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}, nil
}

// Submit runs the workflow for one submission. A nil error means both
// emails were sent; otherwise the error is a *Fault.
func (s *InquiryService) Submit(ctx context.Context, sub *Submission) error {
	ctx, span := s.tracer.Start(ctx, "inquiry.submit",
		trace.WithAttributes(
			attribute.String("inquiry.request_id", sub.RequestID),
			attribute.Bool("inquiry.recaptcha", s.cfg.RequireRecaptcha),
		))
	defer span.End()

	err := s.submit(ctx, sub)
	if err == nil {
		s.logger.Info("Inquiry %s dispatched (notification + acknowledgment)", sub.RequestID)
		return nil
	}

	fault := AsFault(err)
	span.SetAttributes(attribute.String("inquiry.fault", fault.Kind.String()))
	span.RecordError(err)
	span.SetStatus(codes.Error, fault.Message)

	if fault.Kind == ServerFault {
		s.logger.Error("Inquiry %s failed: %v", sub.RequestID, fault.Err)
	} else {
		s.logger.Warn("Inquiry %s rejected: %v", sub.RequestID, fault)
	}
	return fault
}

func (s *InquiryService) submit(ctx context.Context, sub *Submission) error {
	if s.cfg.RequireRecaptcha {
		if err := s.verify(ctx, sub); err != nil {
			return err
		}
	}

	if err := s.validate.Struct(sub); err != nil {
		missing := validation.MissingFields(err)
		if len(missing) == 0 {
			return newServerFault(fmt.Errorf("validating submission: %w", err))
		}
		return newClientFault(MsgFieldsRequired, fmt.Errorf("%w: %v", ErrMissingFields, missing))
	}

	notification := s.notificationMessage(sub)
	acknowledgment := s.acknowledgmentMessage(sub)

	if err := s.dispatch(ctx, "notification", notification); err != nil {
		return err
	}
	return s.dispatch(ctx, "acknowledgment", acknowledgment)
}

func (s *InquiryService) verify(ctx context.Context, sub *Submission) error {
	if sub.RecaptchaToken == "" {
		return newClientFault(MsgRecaptchaRequired, ErrRecaptchaTokenMissing)
	}

	ctx, span := s.tracer.Start(ctx, "inquiry.verify")
	defer span.End()

	ok, err := s.verifier.Verify(ctx, sub.RecaptchaToken, sub.RemoteIP)
	if errors.Is(err, ErrRecaptchaTokenMissing) {
		return newClientFault(MsgRecaptchaRequired, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "verification call failed")
		return newServerFault(fmt.Errorf("recaptcha verification: %w", err))
	}
	if !ok {
		return newClientFault(MsgRecaptchaFailed, ErrRecaptchaRejected)
	}
	return nil
}

func (s *InquiryService) dispatch(ctx context.Context, kind string, msg mail.Message) error {
	ctx, span := s.tracer.Start(ctx, "inquiry.dispatch."+kind)
	defer span.End()

	if err := s.sender.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return newServerFault(fmt.Errorf("%w: %s: %w", ErrDispatch, kind, err))
	}
	return nil
}
