// Package config loads taskreport settings from a .env file and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/AndreyAkinshin/taskreport/internal/log"
	"github.com/AndreyAkinshin/taskreport/internal/reporter"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TASKREPORT"

// Default configuration values.
const (
	DefaultFile      = "tasks.yaml"
	DefaultLogLevel  = "WARN"
	DefaultLogFormat = log.FormatText
)

// Config holds the settings of a run. Field names map to environment
// variables with the TASKREPORT_ prefix.
type Config struct {
	// Reporter selects the reporter by registry name.
	// Env: TASKREPORT_REPORTER (default: default)
	Reporter string `envconfig:"REPORTER" default:"default"`

	// ShowOut includes captured stdout in failure digests.
	// Env: TASKREPORT_SHOW_OUT (default: true)
	ShowOut bool `envconfig:"SHOW_OUT" default:"true"`

	// ShowErr includes captured stderr in failure digests.
	// Env: TASKREPORT_SHOW_ERR (default: true)
	ShowErr bool `envconfig:"SHOW_ERR" default:"true"`

	// File is the task file to run.
	// Env: TASKREPORT_FILE (default: tasks.yaml)
	File string `envconfig:"FILE" default:"tasks.yaml"`

	// Continue keeps running independent tasks after a failure.
	// Env: TASKREPORT_CONTINUE (default: false)
	Continue bool `envconfig:"CONTINUE" default:"false"`

	// LogLevel is the diagnostic log level.
	// Env: TASKREPORT_LOG_LEVEL (default: WARN)
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`

	// LogFormat is the diagnostic log format (text or json).
	// Env: TASKREPORT_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Default returns a Config with every field at its default value.
func Default() Config {
	return Config{
		Reporter:  reporter.DefaultName,
		ShowOut:   true,
		ShowErr:   true,
		File:      DefaultFile,
		LogLevel:  DefaultLogLevel,
		LogFormat: string(DefaultLogFormat),
	}
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment take precedence over the .env file.
// An empty envPath means ".env"; a missing file is not an error.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", envPath, err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file if it exists.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Validate checks field values that envconfig cannot.
func (c Config) Validate() error {
	if _, ok := reporter.Lookup(c.Reporter); !ok {
		return &ValidationError{Field: "reporter", Message: fmt.Sprintf("unknown reporter %q", c.Reporter)}
	}
	switch log.Format(c.LogFormat) {
	case log.FormatText, log.FormatJSON:
	default:
		return &ValidationError{Field: "log_format", Message: fmt.Sprintf("must be %q or %q, got %q", log.FormatText, log.FormatJSON, c.LogFormat)}
	}
	if c.File == "" {
		return &ValidationError{Field: "file", Message: "must not be empty"}
	}
	return nil
}

// ReporterOptions returns the reporter options derived from the config.
func (c Config) ReporterOptions() reporter.Options {
	return reporter.Options{ShowOut: c.ShowOut, ShowErr: c.ShowErr}
}
