package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"avatarchat/internal/config"
	"avatarchat/internal/database"
	"avatarchat/internal/handler"
	"avatarchat/internal/middleware"
	"avatarchat/internal/repository"
	"avatarchat/internal/service"
)

// main is the single entry-point for the text generation API.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.DateTime,
	}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Info().
		Str("provider", cfg.LLMProvider).
		Str("model", cfg.Model).
		Int("top_k", cfg.TopK).
		Msg("configuration loaded")

	ctx := logger.WithContext(context.Background())

	// Mongo backs both the document retriever and the session message store.
	// Without it the server falls back to canned retrieval, which is enough
	// to exercise the pipeline locally.
	var (
		mongoClient *mongo.Client
		retriever   service.Retriever
		sessions    *repository.SessionRepository
	)
	if cfg.MongoURI != "" {
		client, err := database.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer client.Disconnect(ctx)
		logger.Info().Str("db", cfg.DBName).Msg("connected to MongoDB")

		db := client.Database(cfg.DBName)
		sessions = repository.NewSessionRepository(db)

		embedder, err := service.NewVertexEmbedder(ctx, cfg.ProjectID, cfg.Location, cfg.CredentialsFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize embedder")
		}
		defer embedder.Close()

		retriever = service.NewMongoRetriever(
			db.Collection(cfg.RetrieverCollection),
			embedder,
			cfg.RetrieverIndex,
			cfg.TopK,
		)
		mongoClient = client
	} else {
		logger.Warn().Msg("MONGODB_URI not set; using dummy retriever, session store disabled")
		retriever = service.NewDummyRetriever()
	}

	llm, err := service.NewLLM(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize llm")
	}
	if closer, ok := llm.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	conv := service.NewConversation(retriever, llm)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	app.Use(middleware.Logging(logger))

	handler.RegisterRoutes(app, conv, sessions, mongoClient, cfg.RequestTimeout)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server failed to start")
	}
}
