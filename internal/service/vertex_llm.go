package service

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

// VertexLLM implements the LLM interface using Google's Vertex AI.
type VertexLLM struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewVertexLLM creates a Vertex AI client and configures the generative model
// with the supplied sampling options.
func NewVertexLLM(ctx context.Context, projectID, location, credentialsFile string, opts InferenceOptions) (*VertexLLM, error) {
	var clientOpts []option.ClientOption
	if credentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := genai.NewClient(ctx, projectID, location, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SetTemperature(opts.Temperature)
	model.SetTopP(opts.TopP)
	model.SetTopK(int32(opts.TopK))
	model.SetMaxOutputTokens(int32(opts.MaxTokens))
	model.StopSequences = opts.StopSequences

	return &VertexLLM{
		client: client,
		model:  model,
	}, nil
}

// Complete generates a completion for the prompt using the configured model.
func (l *VertexLLM) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := l.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type")
	}
	return string(text), nil
}

// Close closes the Vertex AI client.
func (l *VertexLLM) Close() error {
	return l.client.Close()
}
