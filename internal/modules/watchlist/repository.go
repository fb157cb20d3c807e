package watchlist

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/example/tradeboard/internal/store"
)

// Repository handles watchlist document database operations
type Repository struct {
	coll *mongo.Collection
	log  zerolog.Logger
}

// NewRepository creates a new watchlist repository
func NewRepository(db *mongo.Database, log zerolog.Logger) *Repository {
	return &Repository{
		coll: db.Collection(store.CollectionWatchlist),
		log:  log.With().Str("repo", "watchlist").Logger(),
	}
}

// GetAll fetches every watchlist document with field order preserved, so
// sector iteration stays deterministic across requests.
func (r *Repository) GetAll(ctx context.Context) ([]bson.D, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode watchlist: %w", err)
	}

	return docs, nil
}
