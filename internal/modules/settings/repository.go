// Package settings serves the bot's settings document as an opaque
// passthrough.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/example/tradeboard/internal/store"
)

// Repository handles bot settings database operations
type Repository struct {
	coll *mongo.Collection
	log  zerolog.Logger
}

// NewRepository creates a new settings repository
func NewRepository(db *mongo.Database, log zerolog.Logger) *Repository {
	return &Repository{
		coll: db.Collection(store.CollectionBotSettings),
		log:  log.With().Str("repo", "settings").Logger(),
	}
}

// Get fetches the singleton bot settings document. A missing document
// returns (nil, nil).
func (r *Repository) Get(ctx context.Context) (bson.D, error) {
	var doc bson.D
	err := r.coll.FindOne(ctx, bson.D{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bot settings: %w", err)
	}
	return doc, nil
}
