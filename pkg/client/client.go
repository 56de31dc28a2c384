// Package client is the calling side of the /generateText contract: it holds
// the chat history between turns, guards against overlapping submits and
// forwards answers to a speech sink.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrBusy is returned when Ask is called while a previous request is still in
// flight. The caller retries after the pending turn finishes; histories are
// never interleaved.
var ErrBusy = errors.New("a request is already in flight")

// Speaker consumes answer text and produces audio. Implementations are
// opaque; the reference frontend drives a rendered host's text-to-speech.
type Speaker interface {
	// Stop cancels any speech currently playing.
	Stop()
	// Play speaks the given text.
	Play(text string)
}

// Session is one conversation with the server. It owns the history string:
// the value is overwritten only from server responses, never reconstructed
// locally, and survives until the Session is dropped.
type Session struct {
	baseURL string
	id      string
	http    *http.Client
	speaker Speaker

	mu       sync.Mutex
	inFlight bool
	history  string
}

// Option configures a Session.
type Option func(*Session)

// WithSpeaker attaches a speech sink; every successful answer is played.
func WithSpeaker(s Speaker) Option {
	return func(sess *Session) { sess.speaker = s }
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(sess *Session) { sess.http = c }
}

// NewSession starts a fresh conversation against baseURL with an empty
// history and a random session id.
func NewSession(baseURL string, options ...Option) *Session {
	s := &Session{
		baseURL: baseURL,
		id:      uuid.NewString(),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// ID returns the session identifier sent with every request.
func (s *Session) ID() string { return s.id }

// History returns the current server-issued chat history.
func (s *Session) History() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history
}

// Ask submits one question. Only one Ask may be in flight at a time; a
// concurrent call fails fast with ErrBusy. On any failure the stored history
// is left untouched so a retry continues from the last successful turn.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.inFlight = true
	history := s.history
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if s.speaker != nil {
		s.speaker.Stop()
	}

	completion, err := s.generateText(ctx, question, history)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.history = completion.ChatHistory
	s.mu.Unlock()

	if s.speaker != nil {
		s.speaker.Play(completion.Answer)
	}
	return completion.Answer, nil
}

type completion struct {
	Answer      string `json:"answer"`
	ChatHistory string `json:"chatHistory"`
}

func (s *Session) generateText(ctx context.Context, question, history string) (*completion, error) {
	q := url.Values{}
	q.Set("userPrompt", question)
	q.Set("chatHistory", history)
	q.Set("sessionId", s.id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/generateText?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	var c completion
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &c, nil
}
