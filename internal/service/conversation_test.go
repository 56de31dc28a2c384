package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avatarchat/internal/models"
	"avatarchat/internal/prompt"
)

// mockRetriever implements Retriever for testing.
type mockRetriever struct {
	docs  []models.Document
	err   error
	calls int
}

func (m *mockRetriever) Retrieve(_ context.Context, _ string) ([]models.Document, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.docs, nil
}

// mockLLM implements LLM for testing and records the prompt it saw.
type mockLLM struct {
	answer string
	err    error
	prompt string
	calls  int
}

func (m *mockLLM) Complete(_ context.Context, p string) (string, error) {
	m.calls++
	m.prompt = p
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func TestAnswerFirstTurn(t *testing.T) {
	retriever := &mockRetriever{docs: []models.Document{
		{ID: "1", Content: "The president thanked Justice Breyer for his service."},
	}}
	llm := &mockLLM{answer: " He thanked him for his service."}
	conv := NewConversation(retriever, llm)

	question := "What did the president say about Justice Breyer?"
	got, err := conv.Answer(context.Background(), question, "")

	require.NoError(t, err)
	assert.Equal(t, " He thanked him for his service.", got.Answer)
	assert.Equal(t, prompt.AppendTurn(question, got.Answer, ""), got.ChatHistory)
}

func TestAnswerSecondTurnGrowsHistory(t *testing.T) {
	retriever := &mockRetriever{docs: []models.Document{{ID: "1", Content: "ctx"}}}
	llm := &mockLLM{answer: " first answer"}
	conv := NewConversation(retriever, llm)

	first, err := conv.Answer(context.Background(), "What did the president say about Justice Breyer?", "")
	require.NoError(t, err)

	llm.answer = " Yes, it was nice."
	second, err := conv.Answer(context.Background(), "Was it nice?", first.ChatHistory)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(second.ChatHistory, first.ChatHistory))
	assert.Equal(t, prompt.AppendTurn("Was it nice?", second.Answer, first.ChatHistory), second.ChatHistory)
}

func TestAnswerRendersContextAndHistoryIntoPrompt(t *testing.T) {
	retriever := &mockRetriever{docs: []models.Document{
		{ID: "1", Content: "snippet one"},
		{ID: "2", Content: "snippet two"},
	}}
	llm := &mockLLM{answer: "a"}
	conv := NewConversation(retriever, llm)

	_, err := conv.Answer(context.Background(), "Q", "prior history")
	require.NoError(t, err)

	assert.Contains(t, llm.prompt, "snippet one\n\nsnippet two")
	assert.Contains(t, llm.prompt, "CHAT HISTORY: prior history")
	assert.Contains(t, llm.prompt, "QUESTION: Q")
}

func TestAnswerRetrievalFailureIsAtomic(t *testing.T) {
	retriever := &mockRetriever{err: fmt.Errorf("index unreachable")}
	llm := &mockLLM{answer: "never used"}
	conv := NewConversation(retriever, llm)

	got, err := conv.Answer(context.Background(), "Q", "prior")

	require.Error(t, err)
	assert.Nil(t, got)
	// Inference never runs, so no history update can have happened.
	assert.Equal(t, 0, llm.calls)

	var retrievalErr *RetrievalError
	assert.True(t, errors.As(err, &retrievalErr))
}

func TestAnswerInferenceFailure(t *testing.T) {
	retriever := &mockRetriever{docs: []models.Document{{ID: "1", Content: "ctx"}}}
	llm := &mockLLM{err: fmt.Errorf("quota exceeded")}
	conv := NewConversation(retriever, llm)

	got, err := conv.Answer(context.Background(), "Q", "prior")

	require.Error(t, err)
	assert.Nil(t, got)

	var inferenceErr *InferenceError
	assert.True(t, errors.As(err, &inferenceErr))
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestAnswerRejectsEmptyQuestion(t *testing.T) {
	retriever := &mockRetriever{}
	llm := &mockLLM{}
	conv := NewConversation(retriever, llm)

	for _, q := range []string{"", "   ", "\n"} {
		_, err := conv.Answer(context.Background(), q, "")

		var validationErr *ValidationError
		assert.True(t, errors.As(err, &validationErr), "question %q", q)
	}
	assert.Equal(t, 0, retriever.calls)
}

func TestAnswerEmptyContextStillCompletes(t *testing.T) {
	retriever := &mockRetriever{docs: nil}
	llm := &mockLLM{answer: "I don't know."}
	conv := NewConversation(retriever, llm)

	got, err := conv.Answer(context.Background(), "Q", "")

	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "CONTEXT: \n")
	assert.Equal(t, "I don't know.", got.Answer)
}
