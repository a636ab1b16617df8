package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/osa911/inquiry-mailer/internal/config"
)

// Verifier checks an anti-abuse token. A false verdict with a nil error means
// the service answered and rejected the token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// RecaptchaService handles reCAPTCHA verification
type RecaptchaService struct {
	secretKey string
	verifyURL string
	minScore  float64
	client    *http.Client
}

// NewRecaptchaService creates a new reCAPTCHA service
func NewRecaptchaService(cfg config.RecaptchaConfig) *RecaptchaService {
	return &RecaptchaService{
		secretKey: cfg.SecretKey,
		verifyURL: cfg.VerifyURL,
		minScore:  cfg.MinScore,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// recaptchaResponse represents the response from Google's reCAPTCHA API
type recaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score,omitempty"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verify verifies a reCAPTCHA token.
// Transport and decoding failures are returned as errors; a rejected token
// returns false.
func (s *RecaptchaService) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if s.secretKey == "" {
		return false, fmt.Errorf("reCAPTCHA secret key not configured")
	}

	if token == "" {
		return false, ErrRecaptchaTokenMissing
	}

	// siteverify accepts its parameters in the query string
	params := url.Values{}
	params.Set("secret", s.secretKey)
	params.Set("response", token)
	if remoteIP != "" {
		params.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL+"?"+params.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("failed to create reCAPTCHA request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to verify reCAPTCHA: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("reCAPTCHA API returned status %d", resp.StatusCode)
	}

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to parse reCAPTCHA response: %w", err)
	}

	if !result.Success {
		return false, nil
	}

	// v2 responses carry no score; only v3 scores are compared
	if s.minScore > 0 && result.Score != nil && *result.Score < s.minScore {
		return false, nil
	}

	return true, nil
}
