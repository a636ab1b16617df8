package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/osa911/inquiry-mailer/internal/config"
	"github.com/osa911/inquiry-mailer/internal/logging"
	"github.com/osa911/inquiry-mailer/internal/mail"
	"github.com/osa911/inquiry-mailer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logging.InitLogger(&logging.Config{Level: logging.LevelError}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type recordingSender struct {
	mu     sync.Mutex
	sent   []mail.Message
	failOn map[int]error
	calls  int
}

func (r *recordingSender) Send(ctx context.Context, msg mail.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if err, ok := r.failOn[r.calls]; ok {
		return err
	}
	r.sent = append(r.sent, msg)
	return nil
}

type stubVerifier struct {
	ok  bool
	err error
}

func (s stubVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	return s.ok, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:  "development",
		Port:         "0",
		MaxBodyBytes: 1024,
		Mail: config.MailConfig{
			Provider:  config.ProviderLog,
			User:      "firm@example.com",
			FirmInbox: "firm@example.com",
			FirmName:  "Inciarte & Gonzalez Abogados",
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, sender mail.Sender, verifier service.Verifier) *Server {
	t.Helper()
	logger := logging.GetLogger()
	svc, err := service.NewInquiryService(service.InquiryConfig{
		ServiceAccount:   cfg.Mail.User,
		FirmInbox:        cfg.Mail.FirmInbox,
		FirmName:         cfg.Mail.FirmName,
		RequireRecaptcha: verifier != nil,
	}, sender, verifier, logger)
	require.NoError(t, err)
	return NewServer(cfg, logger, svc)
}

func postJSON(t *testing.T, h http.Handler, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp map[string]string
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func TestSendEmail_Success(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, testConfig(), sender, nil)

	w, resp := postJSON(t, srv.Handler(), `{"name":"Ana","email":"ana@x.com","subject":"Consulta","message":"Hola"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"message": "Email sent successfully!"}, resp)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "firm@example.com", sender.sent[0].To)
	assert.Equal(t, "ana@x.com", sender.sent[1].To)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSendEmail_MissingField(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, testConfig(), sender, nil)

	bodies := []string{
		`{"name":"","email":"ana@x.com","subject":"s","message":"m"}`,
		`{"name":null,"email":"ana@x.com","subject":"s","message":"m"}`,
		`{"email":"ana@x.com","subject":"s","message":"m"}`,
		``,
	}
	for _, body := range bodies {
		w, resp := postJSON(t, srv.Handler(), body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, map[string]string{"message": "All fields are required."}, resp, body)
	}
	assert.Equal(t, 0, sender.calls)
}

func TestSendEmail_InvalidJSON(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, testConfig(), sender, nil)

	w, resp := postJSON(t, srv.Handler(), `{"name":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", resp["message"])

	w, _ = postJSON(t, srv.Handler(), `{"name":42}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, sender.calls)
}

func TestSendEmail_BodyTooLarge(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, testConfig(), sender, nil)

	body := `{"name":"Ana","email":"ana@x.com","subject":"s","message":"` + strings.Repeat("x", 2048) + `"}`
	w, _ := postJSON(t, srv.Handler(), body, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, 0, sender.calls)
}

func TestSendEmail_RecaptchaRequired(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, testConfig(), sender, stubVerifier{ok: true})

	w, resp := postJSON(t, srv.Handler(), `{"name":"Ana","email":"ana@x.com","subject":"Consulta","message":"Hola"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]string{"message": "reCAPTCHA is required."}, resp)
	assert.Equal(t, 0, sender.calls)
}

func TestSendEmail_RecaptchaFailed(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, testConfig(), sender, stubVerifier{ok: false})

	w, resp := postJSON(t, srv.Handler(), `{"name":"Ana","email":"ana@x.com","subject":"Consulta","message":"Hola","g-recaptcha-response":"tok"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "reCAPTCHA verification failed. Please try again.", resp["message"])
	assert.Equal(t, 0, sender.calls)
}

func TestSendEmail_RecaptchaPassed(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, testConfig(), sender, stubVerifier{ok: true})

	w, resp := postJSON(t, srv.Handler(), `{"name":"Ana","email":"ana@x.com","subject":"Consulta","message":"Hola","g-recaptcha-response":"tok"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Email sent successfully!", resp["message"])
	assert.Equal(t, 2, sender.calls)
}

func TestSendEmail_RecaptchaOutage(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, testConfig(), sender, stubVerifier{err: errors.New("connection reset")})

	w, resp := postJSON(t, srv.Handler(), `{"name":"Ana","email":"ana@x.com","subject":"Consulta","message":"Hola","g-recaptcha-response":"tok"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send email due to a server error.", resp["message"])
	assert.Equal(t, 0, sender.calls)
}

func TestSendEmail_DispatchFailures(t *testing.T) {
	tests := []struct {
		name      string
		failOn    int
		wantCalls int
		wantSent  int
	}{
		{"notification fails", 1, 1, 0},
		{"acknowledgment fails", 2, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{failOn: map[int]error{tt.failOn: errors.New("smtp down")}}
			srv := newTestServer(t, testConfig(), sender, nil)

			w, resp := postJSON(t, srv.Handler(), `{"name":"Ana","email":"ana@x.com","subject":"Consulta","message":"Hola"}`, nil)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "Failed to send email due to a server error.", resp["message"])
			assert.Contains(t, resp["error"], "smtp down", "detail is exposed outside release mode")
			assert.Equal(t, tt.wantCalls, sender.calls)
			assert.Len(t, sender.sent, tt.wantSent)
		})
	}
}

func TestSendEmail_ReleaseModeHidesDetail(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	sender := &recordingSender{failOn: map[int]error{1: errors.New("535 bad credentials")}}
	srv := newTestServer(t, testConfig(), sender, nil)

	w, resp := postJSON(t, srv.Handler(), `{"name":"Ana","email":"ana@x.com","subject":"Consulta","message":"Hola"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"message": "Failed to send email due to a server error."}, resp)
}

func TestCORS(t *testing.T) {
	cfg := testConfig()
	cfg.Environment = "production"
	cfg.AllowedOrigins = []string{"https://abogados.example"}
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	srv := newTestServer(t, cfg, &recordingSender{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/send-email", nil)
	req.Header.Set("Origin", "https://abogados.example")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://abogados.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/send-email", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig(), &recordingSender{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRequestIDIsPropagated(t *testing.T) {
	srv := newTestServer(t, testConfig(), &recordingSender{}, nil)

	w, _ := postJSON(t, srv.Handler(), `{"name":"Ana","email":"ana@x.com","subject":"Consulta","message":"Hola"}`,
		map[string]string{"X-Request-ID": "client-supplied-id"})
	assert.Equal(t, "client-supplied-id", w.Header().Get("X-Request-ID"))
}

func TestStartStopsOnContextCancel(t *testing.T) {
	cfg := testConfig()
	srv := newTestServer(t, cfg, &recordingSender{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
