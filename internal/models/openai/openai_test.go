package openai

import (
	"io"
	"testing"

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

func TestNew(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		_, err := New(config.OpenAIConfig{Model: "gpt-4o-mini"}, testLogger())
		assert.Error(t, err)
	})

	t.Run("requires model name", func(t *testing.T) {
		_, err := New(config.OpenAIConfig{APIKey: "sk-test"}, testLogger())
		assert.Error(t, err)
	})

	t.Run("reports model name", func(t *testing.T) {
		m, err := New(config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"}, testLogger())
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", m.Name())
	})
}

func TestTransformToOpenAI(t *testing.T) {
	messages := []llm.Message{
		{Role: llm.RoleUser, Content: "hi"},
		{Role: llm.RoleAssistant, Content: "hello"},
		{Role: llm.RoleUser, Content: "1/5/24 to 12/31/24"},
	}

	params := transformToOpenAI("be helpful", messages)
	require.Len(t, params, 4)

	assert.NotNil(t, params[0].OfSystem)
	assert.NotNil(t, params[1].OfUser)
	assert.NotNil(t, params[2].OfAssistant)
	assert.NotNil(t, params[3].OfUser)
}

func TestTransformToOpenAINoSystemPrompt(t *testing.T) {
	params := transformToOpenAI("", []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	require.Len(t, params, 1)
	assert.NotNil(t, params[0].OfUser)
}
