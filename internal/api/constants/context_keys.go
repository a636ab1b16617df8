package constants

// Context keys for values set by middleware
const (
	ContextKeyRequestID = "requestID"
	ContextKeyInquiry   = "inquiry"
)

// HeaderRequestID carries the request ID in both directions
const HeaderRequestID = "X-Request-ID"
