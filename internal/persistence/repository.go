package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bbuckner99/ai-sales-report-generator/internal/persistence/sqlc"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/prefixed_uuid"
)

// HistoryLimit caps how many messages a session read returns. Only the most
// recent messages inside the cap participate in date extraction.
const HistoryLimit = 100

// Role identifies who authored a stored message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single stored conversation turn.
type Message struct {
	ID        prefixed_uuid.PrefixedUUID `json:"id"`
	SessionID string                     `json:"session_id"`
	Role      Role                       `json:"role"`
	Content   string                     `json:"content"`
	CreatedAt time.Time                  `json:"created_at"`
}

// MessageRepository stores and retrieves conversation history keyed by
// session ID.
type MessageRepository struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
	logger  logger.Logger
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:      db,
		queries: sqlc.New(db),
		logger:  logger,
	}
}

// WithTx creates a new repository instance with a transaction
func (r *MessageRepository) WithTx(tx pgx.Tx) *MessageRepository {
	return &MessageRepository{
		db:      r.db,
		queries: r.queries.WithTx(tx),
		logger:  r.logger,
	}
}

// AppendMessage stores a new conversation turn and returns it with its
// generated ID and timestamp filled in.
func (r *MessageRepository) AppendMessage(ctx context.Context, sessionID string, role Role, content string) (*Message, error) {
	id := prefixed_uuid.New("msg")

	params := sqlc.InsertChatMessageParams{
		ID:        id.String(),
		SessionID: sessionID,
		Role:      sqlc.ChatMessagesRole(role),
		Content:   content,
		CreatedAt: pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true},
	}

	result, err := r.queries.InsertChatMessage(ctx, params)
	if err != nil {
		r.logger.Error("failed to append message", logger.ErrorField(err), logger.SessionIDField(sessionID))
		return nil, fmt.Errorf("append message: %w", err)
	}

	msg, err := convertSQLCToMessage(result)
	if err != nil {
		return nil, fmt.Errorf("convert appended message: %w", err)
	}

	return &msg, nil
}

// SessionHistory returns up to HistoryLimit of the most recent messages for a
// session, ordered oldest first. An unknown session yields an empty slice,
// not an error.
func (r *MessageRepository) SessionHistory(ctx context.Context, sessionID string) ([]Message, error) {
	sqlcMessages, err := r.queries.ListRecentSessionMessages(ctx, sqlc.ListRecentSessionMessagesParams{
		SessionID: sessionID,
		Limit:     HistoryLimit,
	})
	if err != nil {
		r.logger.Error("failed to list session messages", logger.ErrorField(err), logger.SessionIDField(sessionID))
		return nil, fmt.Errorf("list session messages: %w", err)
	}

	// The query returns newest first so the limit keeps the most recent
	// messages. Callers want chronological order.
	messages := make([]Message, 0, len(sqlcMessages))
	for i := len(sqlcMessages) - 1; i >= 0; i-- {
		msg, err := convertSQLCToMessage(sqlcMessages[i])
		if err != nil {
			return nil, fmt.Errorf("convert message: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// SessionMessageCount returns the total number of stored messages for a
// session, ignoring the history cap.
func (r *MessageRepository) SessionMessageCount(ctx context.Context, sessionID string) (int64, error) {
	count, err := r.queries.CountSessionMessages(ctx, sessionID)
	if err != nil {
		r.logger.Error("failed to count session messages", logger.ErrorField(err), logger.SessionIDField(sessionID))
		return 0, fmt.Errorf("count session messages: %w", err)
	}
	return count, nil
}

func convertSQLCToMessage(sqlcMessage sqlc.ChatMessage) (Message, error) {
	id, err := prefixed_uuid.FromString(sqlcMessage.ID)
	if err != nil {
		return Message{}, fmt.Errorf("convert message ID: %w", err)
	}

	return Message{
		ID:        id,
		SessionID: sqlcMessage.SessionID,
		Role:      Role(sqlcMessage.Role),
		Content:   sqlcMessage.Content,
		CreatedAt: sqlcMessage.CreatedAt.Time,
	}, nil
}
