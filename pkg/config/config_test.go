package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string        `env:"TEST_NAME" yaml:"name" default:"fallback"`
	Port    int           `env:"TEST_PORT" yaml:"port" default:"8080"`
	Debug   bool          `env:"TEST_DEBUG" yaml:"debug" default:"false"`
	Timeout time.Duration `env:"TEST_TIMEOUT" yaml:"timeout" default:"30s"`
	Rate    float64       `env:"TEST_RATE" yaml:"rate" default:"1.5"`
	Origins []string      `env:"TEST_ORIGINS" yaml:"origins" default:"a,b"`
	Nested  nestedConfig  `yaml:"nested,inline"`
}

type nestedConfig struct {
	Token string `env:"TEST_TOKEN" yaml:"token"`
}

type requiredConfig struct {
	Secret string `env:"TEST_SECRET" yaml:"secret" required:"true"`
}

type validatedConfig struct {
	Port int `env:"TEST_VPORT" yaml:"port" default:"8080"`
}

func (c *validatedConfig) Validate() error {
	if c.Port > 65535 {
		return errors.New("port out of range")
	}
	return nil
}

func TestGetConfigFromEnvVars(t *testing.T) {
	t.Run("applies defaults when env is empty", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, GetConfigFromEnvVars(&cfg))

		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.False(t, cfg.Debug)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 1.5, cfg.Rate)
		assert.Equal(t, []string{"a", "b"}, cfg.Origins)
	})

	t.Run("env vars override defaults", func(t *testing.T) {
		t.Setenv("TEST_NAME", "from-env")
		t.Setenv("TEST_PORT", "9000")
		t.Setenv("TEST_DEBUG", "true")
		t.Setenv("TEST_TIMEOUT", "5s")
		t.Setenv("TEST_ORIGINS", "x, y ,z")
		t.Setenv("TEST_TOKEN", "tok")

		var cfg testConfig
		require.NoError(t, GetConfigFromEnvVars(&cfg))

		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 9000, cfg.Port)
		assert.True(t, cfg.Debug)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, []string{"x", "y", "z"}, cfg.Origins)
		assert.Equal(t, "tok", cfg.Nested.Token)
	})

	t.Run("invalid int value errors", func(t *testing.T) {
		t.Setenv("TEST_PORT", "not-a-number")

		var cfg testConfig
		require.Error(t, GetConfigFromEnvVars(&cfg))
	})

	t.Run("missing required field errors", func(t *testing.T) {
		var cfg requiredConfig
		err := GetConfigFromEnvVars(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_SECRET")
	})

	t.Run("required field satisfied by env", func(t *testing.T) {
		t.Setenv("TEST_SECRET", "hunter2")

		var cfg requiredConfig
		require.NoError(t, GetConfigFromEnvVars(&cfg))
		assert.Equal(t, "hunter2", cfg.Secret)
	})

	t.Run("validator runs after load", func(t *testing.T) {
		t.Setenv("TEST_VPORT", "70000")

		var cfg validatedConfig
		err := GetConfigFromEnvVars(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port out of range")
	})
}

func TestGetConfig(t *testing.T) {
	t.Run("yaml values load with env overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: from-yaml\nport: 7000\n"), 0o600))

		t.Setenv("TEST_PORT", "9000")

		var cfg testConfig
		require.NoError(t, GetConfig(&cfg, path, false))

		assert.Equal(t, "from-yaml", cfg.Name)
		// Env wins over file.
		assert.Equal(t, 9000, cfg.Port)
	})

	t.Run("missing file errors unless allowed", func(t *testing.T) {
		var cfg testConfig
		require.Error(t, GetConfig(&cfg, "/does/not/exist.yaml", false))

		require.NoError(t, GetConfig(&cfg, "/does/not/exist.yaml", true))
		assert.Equal(t, "fallback", cfg.Name)
	})
}
