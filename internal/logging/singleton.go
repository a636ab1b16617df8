package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger builds the process-wide logger. It must be called once at
// startup before GetLogger.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = logger
	return nil
}

// GetLogger returns the process-wide logger.
// It panics if InitLogger has not been called.
func GetLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("logger not initialized - call logging.InitLogger() first")
	}
	return instance
}

// SetLogger replaces the process-wide logger.
func SetLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	instance = logger
}
