package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"avatarchat/internal/models"
)

// SessionRepository provides Mongo-backed, append-only persistence for chat
// messages keyed by session id. It mirrors the turns the server answers and
// is never read on the primary request path — the client-held history string
// remains the source of truth for prompting.
type SessionRepository struct {
	col *mongo.Collection
}

// NewSessionRepository returns a SessionRepository operating on the
// "messages" collection.
func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{
		col: db.Collection("messages"),
	}
}

// AddUserMessage appends the human half of a turn to the session.
func (r *SessionRepository) AddUserMessage(ctx context.Context, sessionID, text string) error {
	return r.add(ctx, sessionID, models.RoleHuman, text)
}

// AddAIMessage appends the assistant half of a turn to the session.
func (r *SessionRepository) AddAIMessage(ctx context.Context, sessionID, text string) error {
	return r.add(ctx, sessionID, models.RoleAI, text)
}

func (r *SessionRepository) add(ctx context.Context, sessionID, role, text string) error {
	msg := models.Message{
		SessionID: sessionID,
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, msg); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("session_id", sessionID).
			Str("role", role).
			Msg("failed to store message")
		return err
	}
	return nil
}

// Messages returns every stored message of a session in insertion order.
func (r *SessionRepository) Messages(ctx context.Context, sessionID string) ([]models.Message, error) {
	cursor, err := r.col.Find(ctx,
		bson.M{"session_id": sessionID},
		options.Find().SetSort(bson.M{"created_at": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
