package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
)

func validConfig() *AppConfig {
	cfg := &AppConfig{
		Port:           8000,
		RequestTimeout: 30 * time.Second,
	}
	cfg.LLM.Provider = ProviderOpenAI
	cfg.OpenAI.APIKey = "sk-test"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	cfg.Database.URL = "postgres://localhost:5432/reports"
	cfg.Database.MaxConnections = 25
	cfg.Security.MaxRequestSize = 1 << 20
	return cfg
}

func TestValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Level = "verbose"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log_level")
	})

	t.Run("invalid port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Provider = "bard"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm provider")
	})

	t.Run("openai provider requires key", func(t *testing.T) {
		cfg := validConfig()
		cfg.OpenAI.APIKey = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("anthropic provider requires key", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Provider = ProviderAnthropic
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")

		cfg.Anthropic.APIKey = "sk-ant-test"
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing database URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.URL = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_URL")
	})

	t.Run("multiple problems are all reported", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = 0
		cfg.Database.URL = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
		assert.Contains(t, err.Error(), "DATABASE_URL")
	})
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.Level
	}{
		{level: "debug", want: logger.DebugLevel},
		{level: "info", want: logger.InfoLevel},
		{level: "warn", want: logger.WarnLevel},
		{level: "warning", want: logger.WarnLevel},
		{level: "error", want: logger.ErrorLevel},
		{level: "unknown", want: logger.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &AppConfig{}
			cfg.Logging.Level = tt.level
			assert.Equal(t, tt.want, cfg.GetLogLevel())
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &AppConfig{Environment: "production"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	cfg.Environment = "dev"
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.IsDevelopment())
}
