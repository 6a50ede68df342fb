package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"persona-ai/internal/persona"
	"persona-ai/internal/storage"
)

func TestAPIClientSendSuccess(t *testing.T) {
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "dekho yaar, simple si baat hai"})
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	reply, err := c.Send(context.Background(), "what is sharding?", persona.PiyushSir)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != "dekho yaar, simple si baat hai" {
		t.Fatalf("reply = %q", reply)
	}
	if gotBody.Message != "what is sharding?" || gotBody.Persona != "piyushSir" {
		t.Fatalf("unexpected wire body: %+v", gotBody)
	}
}

func TestAPIClientSendRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":          "Too many requests, try again in a minute",
			"resetInSeconds": 42,
		})
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	_, err := c.Send(context.Background(), "hi", persona.HiteshSir)

	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("want RateLimitError, got %v", err)
	}
	if rl.ResetInSeconds != 42 {
		t.Fatalf("ResetInSeconds = %d, want 42", rl.ResetInSeconds)
	}
	if rl.Message != "Too many requests, try again in a minute" {
		t.Fatalf("unexpected message: %q", rl.Message)
	}
}

func TestAPIClientSendRateLimitedWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	_, err := c.Send(context.Background(), "hi", persona.HiteshSir)

	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("want RateLimitError, got %v", err)
	}
	if rl.ResetInSeconds != 0 {
		t.Fatalf("ResetInSeconds = %d, want 0 so the manager applies its default", rl.ResetInSeconds)
	}
	if rl.Message == "" {
		t.Fatalf("message must have a fallback")
	}
}

func TestAPIClientSendServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to process request"})
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	_, err := c.Send(context.Background(), "hi", persona.HiteshSir)
	if err == nil || err.Error() != "Failed to process request" {
		t.Fatalf("want upstream error surfaced verbatim, got %v", err)
	}
}

// End to end over the wire: a failing server produces a visible transcript
// entry, never a dropped message.
func TestManagerOverWireFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to process request"})
	}))
	defer srv.Close()

	st := newFakeStore()
	m := NewManager(st, NewAPIClient(srv.URL), persona.HiteshSir)
	if err := m.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	msgs := m.Messages()
	if len(msgs) != 2 || msgs[1].Role != storage.RoleAssistant {
		t.Fatalf("unexpected transcript: %+v", msgs)
	}
	if msgs[1].Content != "ERROR: Failed to process request" {
		t.Fatalf("transcript entry = %q", msgs[1].Content)
	}
}
