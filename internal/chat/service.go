// Package chat orchestrates the date-collection conversation: it persists
// turns, proxies them to a completion provider, and derives the report
// command from the accumulated history.
package chat

import (
	"context"
	"fmt"

	"github.com/bbuckner99/ai-sales-report-generator/internal/llm"
	"github.com/bbuckner99/ai-sales-report-generator/internal/persistence"
	"github.com/bbuckner99/ai-sales-report-generator/internal/report"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/utils"
)

// SystemPrompt steers the assistant toward collecting exactly two report
// dates. Date extraction does not depend on the model honoring it.
const SystemPrompt = `You are an AI assistant for a Sales Report Generator. Your job is to:
1. Ask the user for a START DATE and END DATE for their sales report
2. Accept dates in various formats (e.g., "January 15, 2024", "01/15/24", "1/15/2024")
3. Once you have both dates, confirm them with the user
4. Be friendly and conversational

Important: You only need to collect two pieces of information:
- Start date
- End date

Keep your responses brief and focused. When you have both dates, confirm them in MM/DD/YY format.`

// MessageStore is the slice of the persistence layer the chat service needs.
type MessageStore interface {
	AppendMessage(ctx context.Context, sessionID string, role persistence.Role, content string) (*persistence.Message, error)
	SessionHistory(ctx context.Context, sessionID string) ([]persistence.Message, error)
}

// Reply is the outcome of one conversation turn.
type Reply struct {
	Response   string
	Command    *string
	IsComplete bool
}

// Service runs the conversation loop for all sessions.
type Service struct {
	store  MessageStore
	model  llm.CompletionClient
	logger logger.Logger
}

// NewService creates a chat service.
func NewService(store MessageStore, model llm.CompletionClient, log logger.Logger) *Service {
	return &Service{
		store:  store,
		model:  model,
		logger: log,
	}
}

// HandleMessage processes one user turn: the message is stored before the
// provider call, so it survives a downstream failure and participates in
// extraction on the next attempt.
func (s *Service) HandleMessage(ctx context.Context, sessionID, message string) (*Reply, error) {
	if _, err := s.store.AppendMessage(ctx, sessionID, persistence.RoleUser, message); err != nil {
		return nil, fmt.Errorf("store user message: %w", err)
	}

	history, err := s.store.SessionHistory(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	response, err := s.model.Complete(ctx, SystemPrompt, toLLMMessages(history))
	if err != nil {
		s.logger.Error("completion failed",
			logger.ErrorField(err),
			logger.SessionIDField(sessionID),
			logger.StringField("model", s.model.Name()))
		return nil, fmt.Errorf("generate response: %w", err)
	}

	if _, err := s.store.AppendMessage(ctx, sessionID, persistence.RoleAssistant, response); err != nil {
		return nil, fmt.Errorf("store assistant message: %w", err)
	}

	// The assistant reply also participates in extraction, so a model that
	// echoes both dates back completes the conversation immediately.
	bodies := make([]string, 0, len(history)+1)
	for _, msg := range history {
		bodies = append(bodies, msg.Content)
	}
	bodies = append(bodies, response)

	reply := &Reply{Response: response}

	if command, ok := report.StateOf(bodies).Command(); ok {
		reply.Command = utils.ToPtr(command)
		reply.IsComplete = true
		s.logger.Info("report command generated", logger.SessionIDField(sessionID))
	}

	return reply, nil
}

// History returns the stored conversation for a session, oldest first. An
// unknown session yields an empty history.
func (s *Service) History(ctx context.Context, sessionID string) ([]persistence.Message, error) {
	history, err := s.store.SessionHistory(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return history, nil
}

func toLLMMessages(history []persistence.Message) []llm.Message {
	messages := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		role := llm.RoleUser
		if msg.Role == persistence.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: msg.Content})
	}
	return messages
}
