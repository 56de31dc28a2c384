package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"avatarchat/internal/models"
	"avatarchat/internal/repository"
	"avatarchat/internal/service"
)

// GenerateHandler wires HTTP → Conversation. It owns the request timeout and
// the mapping from pipeline error kinds to HTTP statuses.
type GenerateHandler struct {
	conv     *service.Conversation
	sessions *repository.SessionRepository // nil when no store is configured
	timeout  time.Duration
}

// NewGenerateHandler returns a struct pointer so you can call Register on it.
// sessions may be nil; turns are then not mirrored anywhere.
func NewGenerateHandler(conv *service.Conversation, sessions *repository.SessionRepository, timeout time.Duration) *GenerateHandler {
	return &GenerateHandler{
		conv:     conv,
		sessions: sessions,
		timeout:  timeout,
	}
}

// Register mounts the /generateText endpoint on the supplied router.
func (h *GenerateHandler) Register(r fiber.Router) {
	r.Get("/generateText", h.generate)
}

// generate handles GET /generateText?userPrompt=...&chatHistory=...
//
// Success is 200 with wildcard CORS headers and {"answer", "chatHistory"}.
// A missing userPrompt is 400; a retrieval or inference failure is 502 so
// the browser never gets a 200 wrapping garbage.
func (h *GenerateHandler) generate(c *fiber.Ctx) error {
	// The page is served from a different origin than the API.
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Headers", "*")

	var req models.GenerateRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	if req.UserPrompt == "" {
		return fiber.NewError(fiber.StatusBadRequest, "userPrompt is required")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	completion, err := h.conv.Answer(ctx, req.UserPrompt, req.ChatHistory)
	if err != nil {
		return mapPipelineError(err)
	}

	h.recordTurn(ctx, req.SessionID, req.UserPrompt, completion.Answer)

	return c.JSON(completion)
}

// recordTurn mirrors a finished turn into the session store. The store is a
// side channel: failures are logged and never fail the request.
func (h *GenerateHandler) recordTurn(ctx context.Context, sessionID, question, answer string) {
	if h.sessions == nil || sessionID == "" {
		return
	}
	if err := h.sessions.AddUserMessage(ctx, sessionID, question); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("session_id", sessionID).Msg("could not record user message")
		return
	}
	if err := h.sessions.AddAIMessage(ctx, sessionID, answer); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("session_id", sessionID).Msg("could not record assistant message")
	}
}

func mapPipelineError(err error) error {
	var (
		validationErr *service.ValidationError
		retrievalErr  *service.RetrievalError
		inferenceErr  *service.InferenceError
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.NewError(fiber.StatusBadRequest, validationErr.Error())
	case errors.As(err, &retrievalErr), errors.As(err, &inferenceErr):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
