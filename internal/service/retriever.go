package service

import (
	"context"

	"avatarchat/internal/models"
)

// Retriever fetches the context documents for a question from an external
// index. Results come back ordered by descending relevance, at most the
// configured top-K of them.
type Retriever interface {
	Retrieve(ctx context.Context, question string) ([]models.Document, error)
}

// Embedder converts text into a vector so the retriever can run a similarity
// search against the document index.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
