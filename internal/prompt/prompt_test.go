package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"avatarchat/internal/models"
)

func TestAppendTurn(t *testing.T) {
	tests := []struct {
		name     string
		human    string
		ai       string
		previous string
		want     string
	}{
		{
			name:  "first turn has no leading separator",
			human: "Hi",
			ai:    " Hello there",
			want:  "\n\nHuman: Hi.\n\nAssistant: Hello there",
		},
		{
			name:  "empty assistant half still closes the marker",
			human: "Hi",
			want:  "\n\nHuman: Hi.\n\nAssistant:",
		},
		{
			name:     "later turns extend the previous history",
			human:    "Was it nice?",
			ai:       " Yes",
			previous: "\n\nHuman: First.\n\nAssistant: reply",
			want:     "\n\nHuman: First.\n\nAssistant: reply\n\n\n\nHuman: Was it nice?.\n\nAssistant: Yes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendTurn(tt.human, tt.ai, tt.previous))
		})
	}
}

func TestAppendTurnPreservesPreviousAsPrefix(t *testing.T) {
	previous := AppendTurn("q1", "a1", "")
	grown := AppendTurn("q2", "a2", previous)

	assert.True(t, strings.HasPrefix(grown, previous+"\n\n"))
	// Append-only: growing twice from the same inputs gives the same string.
	assert.Equal(t, grown, AppendTurn("q2", "a2", previous))
}

func TestFormatDocuments(t *testing.T) {
	assert.Equal(t, "", FormatDocuments(nil))
	assert.Equal(t, "", FormatDocuments([]models.Document{}))

	got := FormatDocuments([]models.Document{
		{ID: "1", Content: "first snippet"},
		{ID: "2", Content: "second snippet"},
	})
	assert.Equal(t, "first snippet\n\nsecond snippet", got)

	// Order follows input, not score.
	first := strings.Index(got, "first snippet")
	second := strings.Index(got, "second snippet")
	assert.Less(t, first, second)
}

func TestRender(t *testing.T) {
	got := Render("C", "", "Q")

	assert.Contains(t, got, "CONTEXT: C")
	assert.Contains(t, got, "QUESTION: Q")
	assert.Contains(t, got, "CHAT HISTORY: \n")
	assert.Contains(t, got, "You are an AI Assistant.")
	assert.True(t, strings.HasSuffix(got, "\n\nAssistant:"))
}

func TestRenderKeepsInstructionVerbatim(t *testing.T) {
	// Substituted values must not leak into or alter the instruction line.
	got := Render("CONTEXT: sneaky", "history", "question")
	assert.Equal(t, 1, strings.Count(got, "You are an AI Assistant."))
	assert.Contains(t, got, "don't try to make up an answer")
}
