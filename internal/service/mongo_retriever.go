package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"avatarchat/internal/models"
)

// MongoRetriever answers retrieval queries with an Atlas $vectorSearch over
// an indexed document collection. It embeds the question first, then returns
// up to topK documents ordered by descending similarity score.
type MongoRetriever struct {
	col      *mongo.Collection
	embedder Embedder
	index    string
	topK     int
}

// NewMongoRetriever wires the collection, the query embedder and the search
// index name. topK falls back to 10 when not positive.
func NewMongoRetriever(col *mongo.Collection, embedder Embedder, index string, topK int) *MongoRetriever {
	if topK <= 0 {
		topK = 10
	}
	return &MongoRetriever{
		col:      col,
		embedder: embedder,
		index:    index,
		topK:     topK,
	}
}

// Retrieve embeds the question and runs the vector search. Order of the
// returned documents follows the index's relevance ranking.
func (r *MongoRetriever) Retrieve(ctx context.Context, question string) ([]models.Document, error) {
	queryEmbedding, err := r.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}

	pipeline := mongo.Pipeline{
		{
			{Key: "$vectorSearch", Value: bson.M{
				"index":         r.index,
				"path":          "embedding",
				"queryVector":   queryEmbedding,
				"numCandidates": r.topK * 10,
				"limit":         r.topK,
				"similarity":    "cosine",
			}},
		},
		{
			{Key: "$project", Value: bson.M{
				"_id":     1,
				"content": 1,
				"source":  1,
				"score":   bson.M{"$meta": "vectorSearchScore"},
			}},
		},
		{
			{Key: "$sort", Value: bson.M{"score": -1}},
		},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to execute vector search: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}

	log.Ctx(ctx).Debug().Int("documents", len(docs)).Msg("retrieved context")
	return docs, nil
}
