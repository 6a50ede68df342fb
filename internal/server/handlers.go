package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"persona-ai/internal/llm"
	"persona-ai/internal/persona"
)

// processErrMsg is the fixed body of every 500 response; upstream details
// stay in the server log.
const processErrMsg = "Failed to process request"

type chatRequest struct {
	Message string `json:"message"`
	Persona string `json:"persona"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error          string `json:"error"`
	ResetInSeconds int64  `json:"resetInSeconds,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// The limiter runs before any body parsing or LLM work.
	decision, err := s.limiter.Check(r)
	if err != nil {
		log.Printf("rate limit check failed: %v", err)
		s.stats.Failure()
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: processErrMsg})
		return
	}
	if decision.Denied {
		s.stats.Denied()
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error:          "Too many requests, try again in a minute",
			ResetInSeconds: decision.ResetInSeconds,
		})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("malformed chat request: %v", err)
		s.stats.Failure()
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: processErrMsg})
		return
	}

	p := persona.Lookup(persona.ID(req.Persona))

	// The model sees exactly two messages; no history is ever forwarded.
	reply, err := s.llm.Complete(r.Context(), []llm.Message{
		{Role: llm.RoleSystem, Content: p.Prompt},
		{Role: llm.RoleUser, Content: req.Message},
	})
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		s.stats.Failure()
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: processErrMsg})
		return
	}

	s.stats.Completion(string(p.ID))
	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "persona-ai",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startTime).String(),
		"usage":     s.stats.Snapshot(),
	})
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderPage(w, "landing", persona.All())
}

func (s *Server) handleChatPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "chat", persona.All())
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("failed to render %s page: %v", name, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
