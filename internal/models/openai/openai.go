// Package openai provides an OpenAI GPT implementation of the completion
// client interface.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/bbuckner99/ai-sales-report-generator/internal/config"
	"github.com/bbuckner99/ai-sales-report-generator/internal/llm"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
)

const defaultMaxTokens = 1024

// Model implements llm.CompletionClient for OpenAI's GPT models.
type Model struct {
	client    *openai.Client
	modelName string
	logger    logger.Logger
}

// New creates a new OpenAI model instance.
func New(cfg config.OpenAIConfig, log logger.Logger) (*Model, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model name is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.APIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.APIBaseURL))
	}

	client := openai.NewClient(opts...)

	return &Model{
		client:    &client,
		modelName: cfg.Model,
		logger:    log,
	}, nil
}

// Name returns the model name.
func (o *Model) Name() string {
	return o.modelName
}

// Complete implements llm.CompletionClient using the chat completions API.
func (o *Model) Complete(ctx context.Context, systemPrompt string, messages []llm.Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:     o.modelName,
		MaxTokens: openai.Int(defaultMaxTokens),
		Messages:  transformToOpenAI(systemPrompt, messages),
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		o.logger.Error("openai completion failed", logger.ErrorField(err), logger.StringField("model", o.modelName))
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return completion.Choices[0].Message.Content, nil
}

// transformToOpenAI converts the provider-neutral conversation to OpenAI chat
// completion message params, with the system prompt inline at the front.
func transformToOpenAI(systemPrompt string, messages []llm.Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)

	if systemPrompt != "" {
		params = append(params, openai.SystemMessage(systemPrompt))
	}

	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleAssistant:
			params = append(params, openai.AssistantMessage(msg.Content))
		default:
			params = append(params, openai.UserMessage(msg.Content))
		}
	}

	return params
}
