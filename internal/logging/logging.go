package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Badge colors. color disables itself when stdout is not a terminal.
var (
	colorRed    = color.New(color.FgHiWhite, color.BgRed)
	colorGreen  = color.New(color.FgHiWhite, color.BgGreen)
	colorYellow = color.New(color.FgHiBlack, color.BgYellow)
	colorBlue   = color.New(color.FgHiWhite, color.BgBlue)
	colorCyan   = color.New(color.FgHiWhite, color.BgCyan)
)

// Log levels
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

type Logger struct {
	*log.Logger
	writer   *lumberjack.Logger
	minLevel int
	requests bool
}

func NewLogger(config *Config) (*Logger, error) {
	if config.Level == "" {
		config.Level = LevelInfo
	}
	if err := config.Validate(); err != nil {
		return nil, WrapError(ErrInvalidConfig, err.Error())
	}

	if config.File == "" {
		return NewLoggerWithWriter(os.Stdout, config), nil
	}

	// Expand home directory in log file path
	logFile := config.File
	if strings.HasPrefix(logFile, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		logFile = filepath.Join(homeDir, logFile[2:])
	}

	// Create log directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Set up log rotation
	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    config.MaxSize, // MB
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   true,
	}

	logger := NewLoggerWithWriter(io.MultiWriter(writer, os.Stdout), config)
	logger.writer = writer
	return logger, nil
}

// NewLoggerWithWriter builds a logger that writes only to w, without rotation.
func NewLoggerWithWriter(w io.Writer, config *Config) *Logger {
	rank, ok := levelRank[config.Level]
	if !ok {
		rank = levelRank[LevelInfo]
	}
	return &Logger{
		Logger:   log.New(w, "", log.LstdFlags),
		minLevel: rank,
		requests: config.Requests,
	}
}

func (l *Logger) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

func (l *Logger) enabled(level string) bool {
	return levelRank[level] >= l.minLevel
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if !l.enabled(LevelDebug) {
		return
	}
	l.Printf(colorBlue.Sprint("[DEBUG]")+" "+format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	if !l.enabled(LevelInfo) {
		return
	}
	l.Printf(colorGreen.Sprint("[INFO]")+" "+format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	if !l.enabled(LevelWarn) {
		return
	}
	l.Printf(colorYellow.Sprint("[WARN]")+" "+format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.Printf(colorRed.Sprint("[ERROR]")+" "+format, v...)
}

// Error handling utilities
type ErrorWithContext struct {
	Err     error
	Context string
}

func (e *ErrorWithContext) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *ErrorWithContext) Unwrap() error {
	return e.Err
}

func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithContext{
		Err:     err,
		Context: context,
	}
}

var ErrInvalidConfig = errors.New("invalid configuration")

// FormatHTTPMethod returns a colored string based on the HTTP method
func (l *Logger) FormatHTTPMethod(method string) string {
	var c *color.Color
	switch method {
	case http.MethodPost:
		c = colorCyan
	case http.MethodPut, http.MethodPatch:
		c = colorYellow
	case http.MethodDelete:
		c = colorRed
	default:
		c = colorBlue
	}
	return c.Sprintf(" %s ", method)
}

// FormatHTTPStatus returns a colored string based on the status code
func (l *Logger) FormatHTTPStatus(status int) string {
	var c *color.Color
	switch {
	case status >= 500:
		c = colorRed
	case status >= 400:
		c = colorYellow
	case status >= 300:
		c = colorCyan
	case status >= 200:
		c = colorGreen
	default:
		c = colorBlue
	}
	return c.Sprintf(" %d ", status)
}

// RequestsEnabled reports whether per-request access logging is on.
func (l *Logger) RequestsEnabled() bool {
	return l.requests
}

// LogHTTPRequest logs an HTTP request with colored output
func (l *Logger) LogHTTPRequest(requestID, method, path, clientIP string, status, bytes int, latency string) {
	if !l.requests {
		return
	}

	l.Printf("[HTTP] %s | %15s | %-17s | %s | %d bytes | %s | %s",
		l.FormatHTTPStatus(status),
		clientIP,
		l.FormatHTTPMethod(method),
		path,
		bytes,
		latency,
		requestID,
	)
}

// LogHTTPError logs a failed request regardless of LOG_REQUESTS; faults must
// always reach the log.
func (l *Logger) LogHTTPError(requestID, method, path, clientIP string, status int, message string, err error) {
	l.Printf("[HTTP-ERROR] %s | %15s | %-17s | %s | %s | %s: %v",
		l.FormatHTTPStatus(status),
		clientIP,
		l.FormatHTTPMethod(method),
		path,
		requestID,
		message,
		err,
	)
}

// LogHTTPFault records the HTTP outcome of a fault the service layer has
// already logged in detail. It carries no error text.
func (l *Logger) LogHTTPFault(requestID, method, path, clientIP string, status int) {
	l.Printf("[HTTP-FAULT] %s | %15s | %-17s | %s | %s",
		l.FormatHTTPStatus(status),
		clientIP,
		l.FormatHTTPMethod(method),
		path,
		requestID,
	)
}
