package service

import (
	"context"
	"fmt"

	"avatarchat/internal/config"
)

// Supported LLM providers.
const (
	ProviderVertex = "vertex"
	ProviderOpenAI = "openai"
	ProviderDummy  = "dummy"
)

// NewLLM creates the inference adapter named by cfg.LLMProvider, configured
// with the sampling options from cfg.
func NewLLM(ctx context.Context, cfg config.Config) (LLM, error) {
	opts := InferenceOptions{
		Model:         cfg.Model,
		MaxTokens:     cfg.MaxTokens,
		Temperature:   cfg.Temperature,
		TopK:          cfg.TopKSampling,
		TopP:          cfg.TopP,
		StopSequences: cfg.StopSequences,
	}
	switch cfg.LLMProvider {
	case ProviderVertex:
		return NewVertexLLM(ctx, cfg.ProjectID, cfg.Location, cfg.CredentialsFile, opts)
	case ProviderOpenAI:
		return NewOpenAILLM(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, opts), nil
	case ProviderDummy:
		return NewDummyLLM(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
