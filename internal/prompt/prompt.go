// Package prompt holds the pure text plumbing of the pipeline: turning
// retrieved documents into a context block, growing the flattened chat
// history, and rendering the final prompt sent to the model.
package prompt

import (
	"fmt"
	"strings"

	"avatarchat/internal/models"
)

// documentSeparator sits between two context documents in the prompt.
const documentSeparator = "\n\n"

// questionTemplate is the fixed instruction the model answers under. The
// placeholders are, in order: context, chat history, question. The literal
// instruction text must not be altered by substitution.
const questionTemplate = `

Human:You are an AI Assistant.Use the following pieces of context to answer the question at the end in less than 100 words.Remove special characters like &.Remove special characters like & from your answer. Do not mention using less than 100 words in your answer. If you don't know the answer, just say that you don't know, don't try to make up an answer. Do not mention the context in your answer
  ----------------
  CONTEXT: %s
  ----------------
  CHAT HISTORY: %s
  ----------------
  QUESTION: %s
  ----------------


Assistant:`

// FormatDocuments concatenates document contents in input order, separated by
// a blank line. An empty slice yields the empty string.
func FormatDocuments(docs []models.Document) string {
	parts := make([]string, len(docs))
	for i, d := range docs {
		parts[i] = d.Content
	}
	return strings.Join(parts, documentSeparator)
}

// AppendTurn flattens one human/assistant exchange onto the running history.
// With no previous history it returns just the new fragment, with no leading
// separator beyond the fragment's own. History is append-only: previous is
// never rewritten, only extended.
func AppendTurn(human, assistant, previous string) string {
	turn := fmt.Sprintf("\n\nHuman: %s.\n\nAssistant:%s", human, assistant)
	if previous == "" {
		return turn
	}
	return previous + "\n\n" + turn
}

// Render substitutes context, chat history and question into the fixed
// template. An empty chatHistory renders as an empty section, not an error.
func Render(context, chatHistory, question string) string {
	return fmt.Sprintf(questionTemplate, context, chatHistory, question)
}
