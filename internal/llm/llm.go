// Package llm defines the provider-neutral completion interface the chat
// service talks to.
package llm

import "context"

// Role identifies who authored a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn sent to a completion provider.
type Message struct {
	Role    Role
	Content string
}

// CompletionClient produces an assistant reply for a conversation. The system
// prompt is passed separately because providers carry it differently.
type CompletionClient interface {
	// Name returns the provider model name, for logging.
	Name() string
	// Complete returns the assistant's next reply given the system prompt
	// and the ordered conversation so far.
	Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error)
}
