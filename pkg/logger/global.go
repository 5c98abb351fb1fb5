package logger

import (
	"sync"
	"syscall"

	"github.com/peermint/peermint/pkg/config"
	"github.com/pkg/errors"
)

// Global logger instance and mutex for thread-safe operations
var (
	globalLogger Logger
	mu           sync.RWMutex
)

// Factory creates logger instances based on the configuration.
func Factory(cfg config.Logger) (Logger, error) {
	if !cfg.Enabled {
		return NewNoOpLogger(), nil
	}
	return NewZapLogger(cfg)
}

// SetGlobalLogger sets the global logger instance.
// It should be called once during application initialization.
func SetGlobalLogger(l Logger) error {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
	return nil
}

// G retrieves the global logger instance.
// Returns a no-op logger if no global logger is set.
func G() Logger {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger != nil {
		return globalLogger
	}
	return NewNoOpLogger()
}

// InitializeGlobalLogger initializes the global logger based on the provided
// configuration. It should be called once during application startup.
func InitializeGlobalLogger(cfg config.Logger) (Logger, error) {
	l, err := Factory(cfg)
	if err != nil {
		return nil, err
	}
	if err := SetGlobalLogger(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Sync flushes any buffered log entries.
// It should be called before application exit to ensure all logs are written.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	if zapLogger, ok := globalLogger.(*ZapLogger); ok && zapLogger.sugaredLogger != nil {
		if err := zapLogger.sugaredLogger.Sync(); err != nil {
			// Syncing stderr/stdout is not supported in every environment and
			// surfaces as EINVAL; there is nothing actionable in that case.
			if errors.Is(err, syscall.EINVAL) {
				return nil
			}
			return err
		}
	}
	return nil
}
