package models

import "time"

// Document is one snippet of context returned by a retriever, ordered by
// descending relevance. Order must be preserved all the way into the prompt.
type Document struct {
	ID      string  `bson:"_id,omitempty" json:"id"`
	Content string  `bson:"content"       json:"content"`
	Source  string  `bson:"source"        json:"source,omitempty"`
	Score   float64 `bson:"score"         json:"score,omitempty"`
}

// GenerateRequest carries the query parameters of GET /generateText.
// ChatHistory is empty on the first turn; SessionID is optional and only used
// to mirror the turn into the persistent message store.
type GenerateRequest struct {
	UserPrompt  string `query:"userPrompt"`
	ChatHistory string `query:"chatHistory"`
	SessionID   string `query:"sessionId"`
}

// Completion is the result of one orchestrated turn. ChatHistory already
// contains the new Human/Assistant fragment appended to the prior history, so
// the caller can hand it back verbatim on the next request.
type Completion struct {
	Answer      string `json:"answer"`
	ChatHistory string `json:"chatHistory"`
}

// Message roles for the persistent session store.
const (
	RoleHuman = "human"
	RoleAI    = "ai"
)

// Message is one stored half of a chat turn, keyed by session.
type Message struct {
	SessionID string    `bson:"session_id" json:"session_id"`
	Role      string    `bson:"role"       json:"role"`
	Text      string    `bson:"text"       json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
