package storage

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry, either from the visitor or the persona.
// Messages are immutable once created; conversations only ever append.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversations persists one message sequence per persona key.
// Implementations can be file-based, database, etc.
// Load of an unknown key returns an empty sequence, not an error.
// Implementations must be safe for concurrent use.
type Conversations interface {
	Load(key string) ([]Message, error)
	Save(key string, msgs []Message) error
	Delete(key string) error
}
