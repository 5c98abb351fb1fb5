package config

import "github.com/pkg/errors"

// Logger holds the configuration for the logging system.
type Logger struct {
	// Enabled toggles logging entirely. When false a no-op logger is used.
	Enabled bool `yaml:"enabled"`

	// Environment selects the zap preset; must be "production" or "development".
	Environment string `yaml:"environment"`

	// Level is the minimum level to emit: debug, info, warn or error.
	Level string `yaml:"level"`
}

func (l Logger) Validate() error {
	if !l.Enabled {
		return nil
	}
	switch l.Environment {
	case "production", "development":
	default:
		return errors.New("environment must be 'production' or 'development'")
	}
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("level must be 'debug', 'info', 'warn' or 'error'")
	}
	return nil
}
