package chat

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbuckner99/ai-sales-report-generator/internal/llm"
	"github.com/bbuckner99/ai-sales-report-generator/internal/persistence"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/prefixed_uuid"
)

type memoryStore struct {
	messages   map[string][]persistence.Message
	appendErr  error
	historyErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{messages: make(map[string][]persistence.Message)}
}

func (s *memoryStore) AppendMessage(_ context.Context, sessionID string, role persistence.Role, content string) (*persistence.Message, error) {
	if s.appendErr != nil {
		return nil, s.appendErr
	}
	msg := persistence.Message{
		ID:        prefixed_uuid.New("msg"),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.messages[sessionID] = append(s.messages[sessionID], msg)
	return &msg, nil
}

func (s *memoryStore) SessionHistory(_ context.Context, sessionID string) ([]persistence.Message, error) {
	if s.historyErr != nil {
		return nil, s.historyErr
	}
	return s.messages[sessionID], nil
}

type stubModel struct {
	reply       string
	err         error
	gotSystem   string
	gotMessages []llm.Message
}

func (m *stubModel) Name() string { return "stub-model" }

func (m *stubModel) Complete(_ context.Context, systemPrompt string, messages []llm.Message) (string, error) {
	m.gotSystem = systemPrompt
	m.gotMessages = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func testLogger() logger.Logger {
	return logger.NewLogger(logger.Config{
		Level:   logger.ErrorLevel,
		Format:  "json",
		Service: "test",
		Output:  io.Discard,
	})
}

func TestHandleMessageCollecting(t *testing.T) {
	store := newMemoryStore()
	model := &stubModel{reply: "Sure! What is your end date?"}
	svc := NewService(store, model, testLogger())

	reply, err := svc.HandleMessage(context.Background(), "sess-1", "start on 1/5/2024")
	require.NoError(t, err)

	assert.Equal(t, "Sure! What is your end date?", reply.Response)
	assert.Nil(t, reply.Command)
	assert.False(t, reply.IsComplete)

	// Both turns are stored in order.
	stored := store.messages["sess-1"]
	require.Len(t, stored, 2)
	assert.Equal(t, persistence.RoleUser, stored[0].Role)
	assert.Equal(t, "start on 1/5/2024", stored[0].Content)
	assert.Equal(t, persistence.RoleAssistant, stored[1].Role)

	// The provider sees the system prompt and the stored conversation.
	assert.Equal(t, SystemPrompt, model.gotSystem)
	require.Len(t, model.gotMessages, 1)
	assert.Equal(t, llm.RoleUser, model.gotMessages[0].Role)
}

func TestHandleMessageCompletesAcrossTurns(t *testing.T) {
	store := newMemoryStore()
	model := &stubModel{reply: "Got it, noted."}
	svc := NewService(store, model, testLogger())

	reply, err := svc.HandleMessage(context.Background(), "sess-1", "start 1/5/2024")
	require.NoError(t, err)
	assert.False(t, reply.IsComplete)

	reply, err = svc.HandleMessage(context.Background(), "sess-1", "end 12/31/24")
	require.NoError(t, err)

	assert.True(t, reply.IsComplete)
	require.NotNil(t, reply.Command)
	assert.Equal(t, "S4DMRPTW /SFV5PTDRNG.FMT /T8 /SB1 /PD3301/05/2412/31/24", *reply.Command)
}

func TestHandleMessageAssistantReplyCompletes(t *testing.T) {
	store := newMemoryStore()
	model := &stubModel{reply: "Confirming your report from 01/05/24 to 12/31/24."}
	svc := NewService(store, model, testLogger())

	// The user never typed a slash date; the assistant confirmation carries
	// both tokens.
	reply, err := svc.HandleMessage(context.Background(), "sess-1", "January 5th through end of year please")
	require.NoError(t, err)

	assert.True(t, reply.IsComplete)
	require.NotNil(t, reply.Command)
	assert.Equal(t, "S4DMRPTW /SFV5PTDRNG.FMT /T8 /SB1 /PD3301/05/2412/31/24", *reply.Command)
}

func TestHandleMessageSessionsAreIsolated(t *testing.T) {
	store := newMemoryStore()
	model := &stubModel{reply: "ok"}
	svc := NewService(store, model, testLogger())

	_, err := svc.HandleMessage(context.Background(), "sess-a", "1/5/24")
	require.NoError(t, err)

	reply, err := svc.HandleMessage(context.Background(), "sess-b", "12/31/24")
	require.NoError(t, err)

	// sess-b only has one date; sess-a's date must not leak in.
	assert.False(t, reply.IsComplete)
	assert.Nil(t, reply.Command)
}

func TestHandleMessageModelError(t *testing.T) {
	store := newMemoryStore()
	model := &stubModel{err: errors.New("rate limited")}
	svc := NewService(store, model, testLogger())

	_, err := svc.HandleMessage(context.Background(), "sess-1", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")

	// The user message was stored before the provider call failed.
	require.Len(t, store.messages["sess-1"], 1)
	assert.Equal(t, persistence.RoleUser, store.messages["sess-1"][0].Role)
}

func TestHandleMessageStoreError(t *testing.T) {
	store := newMemoryStore()
	store.appendErr = errors.New("connection refused")
	svc := NewService(store, &stubModel{reply: "ok"}, testLogger())

	_, err := svc.HandleMessage(context.Background(), "sess-1", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store user message")
}

func TestHistory(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, &stubModel{reply: "ok"}, testLogger())

	_, err := svc.HandleMessage(context.Background(), "sess-1", "hello")
	require.NoError(t, err)

	history, err := svc.History(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, history, 2)

	// Unknown sessions return an empty history, not an error.
	history, err = svc.History(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, history)
}
