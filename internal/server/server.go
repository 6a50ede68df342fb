// Package server exposes the persona chat web app: the landing and chat
// pages plus the JSON API that proxies messages to the LLM provider.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"persona-ai/internal/analytics"
	"persona-ai/internal/llm"
	"persona-ai/internal/ratelimit"
)

type Server struct {
	llm       llm.Client
	limiter   *ratelimit.Limiter
	stats     *analytics.Collector
	srv       *http.Server
	startTime time.Time
}

func New(addr string, client llm.Client, limiter *ratelimit.Limiter, stats *analytics.Collector) *Server {
	s := &Server{
		llm:       client,
		limiter:   limiter,
		stats:     stats,
		startTime: time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/chat", s.handleChatPage)
	mux.HandleFunc("/", s.handleLanding)

	s.srv = &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// Upstream completions can be slow; the write timeout must outlive them.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

func (s *Server) Start() error {
	log.Printf("starting persona-ai web server on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
