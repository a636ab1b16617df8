package service

import (
	"errors"
)

// Sentinel errors for service layer
var (
	ErrRecaptchaTokenMissing = errors.New("recaptcha token missing")
	ErrRecaptchaRejected     = errors.New("recaptcha rejected")
	ErrMissingFields         = errors.New("required fields missing")
	ErrDispatch              = errors.New("mail dispatch failed")
)

// Messages returned to callers
const (
	MsgSuccess           = "Email sent successfully!"
	MsgRecaptchaRequired = "reCAPTCHA is required."
	MsgRecaptchaFailed   = "reCAPTCHA verification failed. Please try again."
	MsgFieldsRequired    = "All fields are required."
	MsgServerFault       = "Failed to send email due to a server error."
)

// FaultKind classifies a failed submission.
type FaultKind int

const (
	// ClientFault is attributable to the caller's input and maps to 400.
	ClientFault FaultKind = iota + 1
	// ServerFault is attributable to a collaborator and maps to 500.
	ServerFault
)

func (k FaultKind) String() string {
	switch k {
	case ClientFault:
		return "client_fault"
	case ServerFault:
		return "server_fault"
	default:
		return "unknown"
	}
}

// Fault is the error returned by InquiryService.Submit.
// Message is safe to show to the caller; Err holds the detail for logs.
type Fault struct {
	Kind    FaultKind
	Message string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return f.Message
	}
	return f.Message + ": " + f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func newClientFault(message string, err error) *Fault {
	return &Fault{Kind: ClientFault, Message: message, Err: err}
}

func newServerFault(err error) *Fault {
	return &Fault{Kind: ServerFault, Message: MsgServerFault, Err: err}
}

// AsFault extracts a *Fault from err. Errors that are not faults are
// reported as server faults.
func AsFault(err error) *Fault {
	if err == nil {
		return nil
	}
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return newServerFault(err)
}
