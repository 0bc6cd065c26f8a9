// SPDX-License-Identifier: MPL-2.0

package config

import "github.com/textutils/textutils/internal/logging"

// Config is the decoded configuration file.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" mapstructure:"log_level"`
	// LogFormat is one of text, json, logfmt.
	LogFormat string `json:"log_format" mapstructure:"log_format"`
	// LogTimestamps adds timestamps to log records.
	LogTimestamps bool `json:"log_timestamps" mapstructure:"log_timestamps"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      logging.DefaultLevel,
		LogFormat:     string(logging.FormatText),
		LogTimestamps: false,
	}
}

// LoggingOptions converts the configuration into logger options for program prefix.
func (c *Config) LoggingOptions(prefix string) logging.Options {
	return logging.Options{
		Prefix:     prefix,
		Level:      c.LogLevel,
		Format:     logging.Format(c.LogFormat),
		Timestamps: c.LogTimestamps,
	}
}
