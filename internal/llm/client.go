package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry of a completion request.
type Message struct {
	Role    string
	Content string
}

// Client produces one completion for an ordered list of messages.
// It is intentionally narrow to allow fakes in tests and future providers.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
