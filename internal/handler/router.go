package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"avatarchat/internal/repository"
	"avatarchat/internal/service"
)

// RegisterRoutes mounts every endpoint the server serves. sessions and db may
// be nil when no Mongo store is configured; the session read endpoint is then
// not registered.
func RegisterRoutes(app *fiber.App,
	conv *service.Conversation,
	sessions *repository.SessionRepository,
	db *mongo.Client,
	requestTimeout time.Duration,
) {
	NewGenerateHandler(conv, sessions, requestTimeout).Register(app)
	NewHealthHandler(db).Register(app)
	if sessions != nil {
		NewSessionHandler(sessions).Register(app)
	}
}
