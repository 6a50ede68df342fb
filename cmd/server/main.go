package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"persona-ai/internal/analytics"
	"persona-ai/internal/config"
	"persona-ai/internal/llm"
	"persona-ai/internal/ratelimit"
	"persona-ai/internal/scheduler"
	"persona-ai/internal/server"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.NewServer()

	client := llm.NewOpenAI(cfg.GeminiAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
	limiter := ratelimit.New(cfg.RateLimitWindow, cfg.RateLimitMax)
	stats := analytics.NewCollector()

	sched := scheduler.New(func(ctx context.Context) error {
		log.Printf("daily usage report:\n%s", stats.Summary())
		return nil
	})
	if err := sched.Start(); err != nil {
		log.Printf("failed to start scheduler: %v", err)
	}

	srv := server.New(cfg.ListenAddr, client, limiter, stats)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		sched.Stop()
		if err := srv.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
