package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

// Server holds the web service configuration. GEMINI_API_KEY is the only
// required setting; everything else has a sane default.
type Server struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// LLM settings
	GeminiAPIKey string `env:"GEMINI_API_KEY,required"`
	LLMBaseURL   string `env:"LLM_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	LLMModel     string `env:"LLM_MODEL" envDefault:"gemini-2.5-flash"`

	// Rate limiting
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`
	RateLimitMax    int64         `env:"RATE_LIMIT_MAX" envDefault:"3"`
}

func NewServer() *Server {
	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// Client holds the terminal chat client configuration.
type Client struct {
	ServerURL string `env:"PERSONA_AI_URL" envDefault:"http://localhost:8080"`
	DataDir   string `env:"PERSONA_AI_DATA_DIR" envDefault:"data/conversations"`
}

func NewClient() *Client {
	cfg := &Client{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
