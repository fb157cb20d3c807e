package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/example/tradeboard/internal/store"
)

// Repository handles summary document database operations
type Repository struct {
	coll *mongo.Collection
	log  zerolog.Logger
}

// NewRepository creates a new portfolio repository
func NewRepository(db *mongo.Database, log zerolog.Logger) *Repository {
	return &Repository{
		coll: db.Collection(store.CollectionSummary),
		log:  log.With().Str("repo", "portfolio").Logger(),
	}
}

// GetSummaryDocument fetches the singleton summary document. Field order is
// preserved so holdings keep the order the bot wrote them in. A missing
// document returns (nil, nil); the caller decides whether that is a 404.
func (r *Repository) GetSummaryDocument(ctx context.Context) (bson.D, error) {
	var doc bson.D
	err := r.coll.FindOne(ctx, bson.D{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary document: %w", err)
	}
	return doc, nil
}
