package config

import "time"

// Observability represents the configuration for the observability package.
type Observability struct {
	// Metrics holds the configuration for metrics collection and exporting.
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds the configuration settings for metrics.
type MetricsConfig struct {
	Enable         bool              `yaml:"enable"`
	Endpoint       string            `yaml:"endpoint"`
	Headers        map[string]string `yaml:"headers"`
	ExportInterval time.Duration     `yaml:"export_interval"`
}
