// Simple SQLC models

package sqlc

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type ChatMessagesRole string

const (
	ChatMessagesRoleUser      ChatMessagesRole = "user"
	ChatMessagesRoleAssistant ChatMessagesRole = "assistant"
)

func (e *ChatMessagesRole) Scan(src interface{}) error {
	switch s := src.(type) {
	case string:
		*e = ChatMessagesRole(s)
	case []byte:
		*e = ChatMessagesRole(s)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", src, e)
	}
	return nil
}

func (e ChatMessagesRole) Value() (driver.Value, error) {
	return string(e), nil
}

type ChatMessage struct {
	ID        string             `json:"id"`
	SessionID string             `json:"session_id"`
	Role      ChatMessagesRole   `json:"role"`
	Content   string             `json:"content"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
