package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"persona-ai/internal/persona"
)

type chatRequest struct {
	Message string `json:"message"`
	Persona string `json:"persona"`
}

type chatResponse struct {
	Response       string `json:"response"`
	Error          string `json:"error"`
	ResetInSeconds int64  `json:"resetInSeconds"`
}

// RateLimitError reports a denied send and when the window reopens.
// ResetInSeconds is zero when the server omitted it.
type RateLimitError struct {
	Message        string
	ResetInSeconds int64
}

func (e *RateLimitError) Error() string { return e.Message }

// APIClient speaks the chat proxy wire format: POST /api/chat with
// {message, persona}, answered by {response}, a 429 {error, resetInSeconds}
// or a 500 {error}.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Upstream completions can take a while; keep the client patient.
		http: &http.Client{Timeout: 2 * time.Minute},
	}
}

func (c *APIClient) Send(ctx context.Context, message string, id persona.ID) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message, Persona: string(id)})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var out chatResponse
	// A malformed error body should not mask the status code, so decode
	// failures only matter on the success path.
	decodeErr := json.Unmarshal(data, &out)

	switch resp.StatusCode {
	case http.StatusOK:
		if decodeErr != nil {
			return "", fmt.Errorf("decode response: %w", decodeErr)
		}
		return out.Response, nil
	case http.StatusTooManyRequests:
		msg := out.Error
		if msg == "" {
			msg = "Too many requests, try again in a minute"
		}
		return "", &RateLimitError{Message: msg, ResetInSeconds: out.ResetInSeconds}
	default:
		if out.Error != "" {
			return "", fmt.Errorf("%s", out.Error)
		}
		return "", fmt.Errorf("chat request failed: %s", resp.Status)
	}
}
