package sqlc

import (
	"context"
)

type Querier interface {
	InsertChatMessage(ctx context.Context, arg InsertChatMessageParams) (ChatMessage, error)
	ListRecentSessionMessages(ctx context.Context, arg ListRecentSessionMessagesParams) ([]ChatMessage, error)
	CountSessionMessages(ctx context.Context, sessionID string) (int64, error)
}

var _ Querier = (*Queries)(nil)
