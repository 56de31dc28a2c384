package service

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAILLM implements the LLM interface against any OpenAI-compatible chat
// completion endpoint (OpenAI itself, OpenRouter, local gateways).
type OpenAILLM struct {
	client *openai.Client
	opts   InferenceOptions
}

// NewOpenAILLM builds a client for the given API key. baseURL is optional and
// overrides the default endpoint.
func NewOpenAILLM(apiKey, baseURL string, opts InferenceOptions) *OpenAILLM {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAILLM{
		client: openai.NewClientWithConfig(config),
		opts:   opts,
	}
}

// Complete sends the prompt as a single user message. Top-k filtering is not
// part of the OpenAI API surface and is ignored here.
func (c *OpenAILLM) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
		TopP:        c.opts.TopP,
		Stop:        c.opts.StopSequences,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
