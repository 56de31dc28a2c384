package service

import (
	"context"

	"avatarchat/internal/models"
)

type dummyRetriever struct{}

func (d dummyRetriever) Retrieve(context.Context, string) ([]models.Document, error) {
	return []models.Document{
		{ID: "doc-1", Content: "<placeholder context>", Source: "dummy"},
	}, nil
}

// NewDummyRetriever returns a retriever with canned context, so the server
// can run without a document index.
func NewDummyRetriever() Retriever {
	return dummyRetriever{}
}

type dummyLLM struct{}

func (d dummyLLM) Complete(context.Context, string) (string, error) {
	return "<placeholder answer>", nil
}

// NewDummyLLM returns a model that answers every prompt with a fixed string.
func NewDummyLLM() LLM {
	return dummyLLM{}
}
