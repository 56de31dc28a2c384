package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"avatarchat/internal/models"
	"avatarchat/internal/prompt"
)

// Conversation is the request-to-answer pipeline: retrieve context for the
// question, render the prompt around it and the prior history, run inference,
// then append the finished turn onto the history.
//
// It holds no state between calls. The caller owns the chat history and
// passes it back in on every request.
type Conversation struct {
	retriever Retriever
	llm       LLM
}

// NewConversation wires the retriever and the inference adapter.
func NewConversation(retriever Retriever, llm LLM) *Conversation {
	return &Conversation{
		retriever: retriever,
		llm:       llm,
	}
}

// Answer runs one turn. The returned Completion's ChatHistory always equals
// prompt.AppendTurn(question, answer, priorHistory): the history grows
// exactly once per call, only after inference succeeded. If retrieval or
// inference fails nothing is appended and the error propagates.
func (c *Conversation) Answer(ctx context.Context, question, priorHistory string) (*models.Completion, error) {
	if strings.TrimSpace(question) == "" {
		return nil, &ValidationError{Reason: "userPrompt cannot be empty"}
	}

	docs, err := c.retriever.Retrieve(ctx, question)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}

	rendered := prompt.Render(prompt.FormatDocuments(docs), priorHistory, question)
	log.Ctx(ctx).Debug().
		Int("documents", len(docs)).
		Int("prompt_len", len(rendered)).
		Msg("prompt rendered")

	answer, err := c.llm.Complete(ctx, rendered)
	if err != nil {
		return nil, &InferenceError{Err: err}
	}

	return &models.Completion{
		Answer:      answer,
		ChatHistory: prompt.AppendTurn(question, answer, priorHistory),
	}, nil
}
