package common

// MessageResponse is the body of every successful or rejected response
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for server faults. Error carries the underlying
// detail and is only populated outside release mode.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// NewMessageResponse creates a response with a simple message
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewErrorResponse creates a server fault response
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
