package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongo establishes a new MongoDB client with a 10-second connection
// timeout and verifies the connection with a ping before returning it.
//
// Typical usage:
//
//	client, err := database.NewMongo(ctx, cfg.MongoURI)
//	if err != nil { … }
//	defer client.Disconnect(ctx)
func NewMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		// Disconnect in case of ping failure to avoid leaking sockets.
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}
