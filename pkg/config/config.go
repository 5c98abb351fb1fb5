package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var global *Config

// Config represents the overall application configuration: logging, ledger
// parameters, proof-of-work search options, and observability settings.
type Config struct {
	// Logger holds the configuration for the logging system, including log
	// level and environment.
	Logger Logger `yaml:"logger"`

	// Ledger holds the account-ledger parameters.
	Ledger Ledger `yaml:"ledger"`

	// Pow holds the proof-of-work search options.
	Pow Pow `yaml:"pow"`

	// Observability holds all configurations related to metrics exporting.
	Observability Observability `yaml:"observability"`
}

// Default returns the configuration used when no config file is present.
// Every value matches the documented ledger defaults, so the binary runs with
// zero setup.
func Default() *Config {
	return &Config{
		Logger: Logger{
			Enabled:     true,
			Environment: "development",
			Level:       "info",
		},
		Ledger: Ledger{
			InitialGrant: DefaultInitialGrant,
		},
		Pow: Pow{
			Workers: 1,
		},
	}
}

// Validate checks the integrity of the loaded configuration.
func (c Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return errors.Wrap(err, "logger configuration")
	}
	if err := c.Pow.Validate(); err != nil {
		return errors.Wrap(err, "pow configuration")
	}
	return nil
}

// LoadConfig loads the configuration from a YAML file into the Config struct.
// A missing file is not an error: the defaults are returned instead, so the
// node can be started without any configuration on disk.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// G retrieves the global configuration instance.
func G() *Config {
	return global
}

// InitializeGlobalConfig loads the configuration and installs it as the
// process-wide instance accessible via G().
func InitializeGlobalConfig(filename string) (*Config, error) {
	cfg, err := LoadConfig(filename)
	if err != nil {
		return nil, err
	}
	global = cfg
	return cfg, nil
}
