package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	db *mongo.Client
}

func NewHealthHandler(db *mongo.Client) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"db":     h.checkDB(c),
	})
}

func (h *HealthHandler) checkDB(c *fiber.Ctx) string {
	if h.db == nil {
		return "not_configured"
	}
	if err := h.db.Ping(c.UserContext(), nil); err != nil {
		return "error"
	}
	return "connected"
}
