package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreyAkinshin/taskreport/internal/reporter"
)

var envVars = []string{
	"TASKREPORT_REPORTER",
	"TASKREPORT_SHOW_OUT",
	"TASKREPORT_SHOW_ERR",
	"TASKREPORT_FILE",
	"TASKREPORT_CONTINUE",
	"TASKREPORT_LOG_LEVEL",
	"TASKREPORT_LOG_FORMAT",
}

// clearEnv unsets every TASKREPORT_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range envVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKREPORT_REPORTER", "json")
	t.Setenv("TASKREPORT_SHOW_OUT", "false")
	t.Setenv("TASKREPORT_CONTINUE", "true")
	t.Setenv("TASKREPORT_FILE", "ci.yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Reporter)
	assert.False(t, cfg.ShowOut)
	assert.True(t, cfg.ShowErr)
	assert.True(t, cfg.Continue)
	assert.Equal(t, "ci.yaml", cfg.File)
	assert.Equal(t, reporter.Options{ShowOut: false, ShowErr: true}, cfg.ReporterOptions())
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TASKREPORT_REPORTER=executed-only\nTASKREPORT_LOG_LEVEL=DEBUG\n"), 0o644))
	t.Setenv("TASKREPORT_LOG_LEVEL", "ERROR")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "executed-only", cfg.Reporter)
	assert.Equal(t, "ERROR", cfg.LogLevel, "environment wins over .env")
}

func TestLoad_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKREPORT_SHOW_ERR", "maybe")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "read environment")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown reporter", func(c *Config) { c.Reporter = "xml" }, "reporter"},
		{"bad log format", func(c *Config) { c.LogFormat = "yaml" }, "log_format"},
		{"empty file", func(c *Config) { c.File = "" }, "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "error = %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}
