// Package chat owns the client side of a conversation: the per-persona
// message lists, their persistence, and the request/response cycle against
// the chat proxy.
package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"persona-ai/internal/persona"
	"persona-ai/internal/storage"
)

// State of the active conversation.
type State int

const (
	StateIdle State = iota
	StateSending
	StateRateLimited
)

// defaultResetSeconds applies when a 429 arrives without a countdown.
const defaultResetSeconds = 60

// Sender is the slice of APIClient the manager depends on.
type Sender interface {
	Send(ctx context.Context, message string, id persona.ID) (string, error)
}

// Manager drives one visitor's conversations, one message list per persona.
// Messages are append-only; every change to a non-empty conversation is
// persisted immediately under the persona's key.
type Manager struct {
	store  storage.Conversations
	sender Sender

	active       persona.ID
	msgs         []storage.Message
	sending      bool
	limitedUntil time.Time

	now func() time.Time
}

func NewManager(store storage.Conversations, sender Sender, active persona.ID) *Manager {
	m := &Manager{store: store, sender: sender, now: time.Now}
	m.Switch(active)
	return m
}

func (m *Manager) Active() persona.ID { return m.active }

func (m *Manager) State() State {
	switch {
	case m.sending:
		return StateSending
	case m.now().Before(m.limitedUntil):
		return StateRateLimited
	default:
		return StateIdle
	}
}

// ResetIn reports how long until sending is allowed again; zero when the
// manager is not rate limited.
func (m *Manager) ResetIn() time.Duration {
	if d := m.limitedUntil.Sub(m.now()); d > 0 {
		return d
	}
	return 0
}

// Messages returns a copy of the active conversation.
func (m *Manager) Messages() []storage.Message {
	out := make([]storage.Message, len(m.msgs))
	copy(out, m.msgs)
	return out
}

// Switch makes id the active persona and restores its stored conversation.
// Missing or unreadable data yields an empty conversation.
func (m *Manager) Switch(id persona.ID) {
	m.active = id
	msgs, err := m.store.Load(string(id))
	if err != nil {
		log.Printf("failed to restore conversation for %s: %v", id, err)
		msgs = nil
	}
	m.msgs = msgs
}

// Clear empties the active conversation and removes its stored entry
// immediately. Other personas' conversations are untouched.
func (m *Manager) Clear() error {
	m.msgs = nil
	return m.store.Delete(string(m.active))
}

// Send runs one request/response cycle. Whitespace-only input is a silent
// no-op. A rate-limit denial is returned to the caller (for the warning
// toast) and blocks further sends until the countdown elapses; any other
// failure becomes a visible "ERROR: ..." transcript entry instead of an
// error return.
func (m *Manager) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if m.State() != StateIdle {
		return &RateLimitError{
			Message:        "Too many requests, try again in a minute",
			ResetInSeconds: int64(m.ResetIn() / time.Second),
		}
	}

	// Replies are applied to the conversation of the persona that issued
	// the send, even if the active persona changes before it resolves.
	origin := m.active
	m.append(origin, storage.Message{Role: storage.RoleUser, Content: text})

	m.sending = true
	reply, err := m.sender.Send(ctx, text, origin)
	m.sending = false

	var rl *RateLimitError
	switch {
	case err == nil:
		m.append(origin, storage.Message{Role: storage.RoleAssistant, Content: reply})
	case errors.As(err, &rl):
		reset := rl.ResetInSeconds
		if reset <= 0 {
			reset = defaultResetSeconds
		}
		m.limitedUntil = m.now().Add(time.Duration(reset) * time.Second)
		return err
	default:
		m.append(origin, storage.Message{Role: storage.RoleAssistant, Content: "ERROR: " + err.Error()})
	}
	return nil
}

func (m *Manager) append(origin persona.ID, msg storage.Message) {
	if origin == m.active {
		m.msgs = append(m.msgs, msg)
		m.persist(origin, m.msgs)
		return
	}
	// The originating persona is no longer active: route the message to its
	// stored conversation without touching the current view.
	msgs, err := m.store.Load(string(origin))
	if err != nil {
		log.Printf("failed to load conversation for %s: %v", origin, err)
		msgs = nil
	}
	m.persist(origin, append(msgs, msg))
}

func (m *Manager) persist(id persona.ID, msgs []storage.Message) {
	if len(msgs) == 0 {
		return
	}
	if err := m.store.Save(string(id), msgs); err != nil {
		log.Printf("failed to persist conversation for %s: %v", id, err)
	}
}
