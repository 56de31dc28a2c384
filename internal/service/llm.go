package service

import "context"

// LLM defines the interface for language model interactions.
type LLM interface {
	// Complete sends the rendered prompt to the model and returns the text
	// generated before the first stop sequence or the length limit.
	Complete(ctx context.Context, prompt string) (string, error)
}

// InferenceOptions carries the sampling configuration for a model. Zero
// values mean "use the provider default".
type InferenceOptions struct {
	// Model is the provider-specific model identifier.
	Model string
	// MaxTokens caps the length of the generated answer.
	MaxTokens int
	// Temperature is 0-1; higher values increase randomness of word choices.
	Temperature float32
	// TopK keeps only the k most likely tokens at each step.
	TopK int
	// TopP is 0-1 nucleus filtering; higher values increase word diversity.
	TopP float32
	// StopSequences halt generation as soon as one of them is produced.
	StopSequences []string
}
