package handler

import (
	"github.com/gofiber/fiber/v2"

	"avatarchat/internal/repository"
)

// SessionHandler exposes the persisted message history of a session.
type SessionHandler struct {
	sessions *repository.SessionRepository
}

func NewSessionHandler(sessions *repository.SessionRepository) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Register mounts the session read endpoint.
func (h *SessionHandler) Register(r fiber.Router) {
	r.Get("/sessions/:sessionId/messages", h.messages)
}

// messages handles GET /sessions/:sessionId/messages and returns the stored
// turns in insertion order.
func (h *SessionHandler) messages(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	if sessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "sessionId is required")
	}

	msgs, err := h.sessions.Messages(c.UserContext(), sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"messages":   msgs,
	})
}
