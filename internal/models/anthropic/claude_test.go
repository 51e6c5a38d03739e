package anthropic

import (
	"io"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbuckner99/ai-sales-report-generator/internal/config"
	"github.com/bbuckner99/ai-sales-report-generator/internal/llm"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.NewLogger(logger.Config{
		Level:   logger.ErrorLevel,
		Format:  "json",
		Service: "test",
		Output:  io.Discard,
	})
}

func TestNewClaudeModel(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		_, err := NewClaudeModel(config.AnthropicConfig{Model: "claude-3-5-haiku-latest"}, testLogger())
		assert.Error(t, err)
	})

	t.Run("requires model name", func(t *testing.T) {
		_, err := NewClaudeModel(config.AnthropicConfig{APIKey: "sk-ant-test"}, testLogger())
		assert.Error(t, err)
	})

	t.Run("reports model name", func(t *testing.T) {
		m, err := NewClaudeModel(config.AnthropicConfig{APIKey: "sk-ant-test", Model: "claude-3-5-haiku-latest"}, testLogger())
		require.NoError(t, err)
		assert.Equal(t, "claude-3-5-haiku-latest", m.Name())
	})
}

func TestTransformToAnthropic(t *testing.T) {
	messages := []llm.Message{
		{Role: llm.RoleUser, Content: "hi"},
		{Role: llm.RoleAssistant, Content: "hello"},
	}

	params := transformToAnthropic(messages)
	require.Len(t, params, 2)

	assert.Equal(t, anthropic.MessageParamRoleUser, params[0].Role)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, params[1].Role)
}
