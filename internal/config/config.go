// Package config centralises all environment configuration for the server.
// It should be imported only by `cmd/server`, the service factory and test
// code. Business-logic layers receive already-built values via
// dependency-injection.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime option the server needs.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string `env:"PORT" envDefault:"8080"`

	// Server tuning
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// Data store. Optional: without a Mongo URI the server falls back to the
	// dummy retriever and skips the session message store.
	MongoURI string `env:"MONGODB_URI"`
	DBName   string `env:"MONGODB_DB" envDefault:"avatarchat"`

	// Retrieval
	RetrieverCollection string `env:"RETRIEVER_COLLECTION" envDefault:"documents"`
	RetrieverIndex      string `env:"RETRIEVER_INDEX" envDefault:"vector_index"`
	TopK                int    `env:"RETRIEVER_TOP_K" envDefault:"10"`

	// Inference
	LLMProvider   string   `env:"LLM_PROVIDER" envDefault:"vertex"`
	Model         string   `env:"LLM_MODEL" envDefault:"gemini-2.0-flash-lite-001"`
	MaxTokens     int      `env:"LLM_MAX_TOKENS" envDefault:"2000"`
	Temperature   float32  `env:"LLM_TEMPERATURE" envDefault:"0.5"`
	TopKSampling  int      `env:"LLM_TOP_K" envDefault:"250"`
	TopP          float32  `env:"LLM_TOP_P" envDefault:"0.5"`
	StopSequences []string `env:"LLM_STOP_SEQUENCES" envSeparator:"|"`

	// Provider credentials
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL"`
	ProjectID       string `env:"GCP_PROJECT_ID"`
	Location        string `env:"GCP_LOCATION" envDefault:"us-central1"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// Load parses the environment (and an optional .env file) into Config.
func Load() (Config, error) {
	// godotenv.Load() is a no-op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.StopSequences) == 0 {
		cfg.StopSequences = []string{"\n\nHuman:"}
	}
	return cfg, nil
}
