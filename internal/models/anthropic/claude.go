// Package anthropic provides an Anthropic Claude implementation of the
// completion client interface.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bbuckner99/ai-sales-report-generator/internal/config"
	"github.com/bbuckner99/ai-sales-report-generator/internal/llm"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
)

const defaultMaxTokens = 1024

// ClaudeModel implements llm.CompletionClient for Anthropic Claude models
type ClaudeModel struct {
	client    anthropic.Client
	modelName string
	logger    logger.Logger
}

// NewClaudeModel creates a new Claude model instance
func NewClaudeModel(cfg config.AnthropicConfig, log logger.Logger) (*ClaudeModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
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

	client := anthropic.NewClient(opts...)

	return &ClaudeModel{
		client:    client,
		modelName: cfg.Model,
		logger:    log,
	}, nil
}

// Name returns the name of the model
func (c *ClaudeModel) Name() string {
	return c.modelName
}

// Complete implements llm.CompletionClient using the messages API.
func (c *ClaudeModel) Complete(ctx context.Context, systemPrompt string, messages []llm.Message) (string, error) {
	req := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.modelName),
		MaxTokens: defaultMaxTokens,
		Messages:  transformToAnthropic(messages),
	}

	if systemPrompt != "" {
		req.System = []anthropic.TextBlockParam{
			{Text: systemPrompt},
		}
	}

	resp, err := c.client.Messages.New(ctx, req)
	if err != nil {
		c.logger.Error("claude completion failed", logger.ErrorField(err), logger.StringField("model", c.modelName))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	var texts []string
	for _, block := range resp.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			texts = append(texts, textBlock.Text)
		}
	}

	if len(texts) == 0 {
		return "", fmt.Errorf("no text content in response")
	}

	return strings.Join(texts, "\n"), nil
}

// transformToAnthropic converts the provider-neutral conversation to
// Anthropic message params. The system prompt travels outside the message
// list so it is not handled here.
func transformToAnthropic(messages []llm.Message) []anthropic.MessageParam {
	params := make([]anthropic.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleAssistant:
			params = append(params, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			params = append(params, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return params
}
