package inquiry

// SendEmailRequest represents a contact form submission
type SendEmailRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"g-recaptcha-response"`
}
