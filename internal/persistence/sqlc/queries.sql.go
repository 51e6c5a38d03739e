package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertChatMessage = `-- name: InsertChatMessage :one
INSERT INTO chat_messages (id, session_id, role, content, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, session_id, role, content, created_at
`

type InsertChatMessageParams struct {
	ID        string             `json:"id"`
	SessionID string             `json:"session_id"`
	Role      ChatMessagesRole   `json:"role"`
	Content   string             `json:"content"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertChatMessage(ctx context.Context, arg InsertChatMessageParams) (ChatMessage, error) {
	row := q.db.QueryRow(ctx, insertChatMessage,
		arg.ID,
		arg.SessionID,
		arg.Role,
		arg.Content,
		arg.CreatedAt,
	)
	var i ChatMessage
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.Role,
		&i.Content,
		&i.CreatedAt,
	)
	return i, err
}

const listRecentSessionMessages = `-- name: ListRecentSessionMessages :many
SELECT id, session_id, role, content, created_at FROM chat_messages
WHERE session_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

type ListRecentSessionMessagesParams struct {
	SessionID string `json:"session_id"`
	Limit     int32  `json:"limit"`
}

func (q *Queries) ListRecentSessionMessages(ctx context.Context, arg ListRecentSessionMessagesParams) ([]ChatMessage, error) {
	rows, err := q.db.Query(ctx, listRecentSessionMessages, arg.SessionID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ChatMessage
	for rows.Next() {
		var i ChatMessage
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.Role,
			&i.Content,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countSessionMessages = `-- name: CountSessionMessages :one
SELECT count(*) FROM chat_messages WHERE session_id = $1
`

func (q *Queries) CountSessionMessages(ctx context.Context, sessionID string) (int64, error) {
	row := q.db.QueryRow(ctx, countSessionMessages, sessionID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
