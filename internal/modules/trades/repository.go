package trades

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/example/tradeboard/internal/store"
)

// Repository handles trade ledger database operations
type Repository struct {
	coll *mongo.Collection
	log  zerolog.Logger
}

// NewRepository creates a new trade repository
func NewRepository(db *mongo.Database, log zerolog.Logger) *Repository {
	return &Repository{
		coll: db.Collection(store.CollectionTrades),
		log:  log.With().Str("repo", "trades").Logger(),
	}
}

// GetHistory retrieves trade records, most recent first. A limit of 0 returns
// everything.
func (r *Repository) GetHistory(ctx context.Context, limit int64) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer cursor.Close(ctx)

	var records []Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode trades: %w", err)
	}

	return records, nil
}

// LatestBuyPrice returns the price of the most recent BUY trade for a symbol,
// used as its cost basis. No BUY trade yields 0, not an error: holdings can
// be seeded outside the trade log.
func (r *Repository) LatestBuyPrice(ctx context.Context, symbol string) (float64, error) {
	filter := bson.D{
		{Key: "ticker", Value: symbol},
		{Key: "action", Value: ActionBuy},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var record Record
	err := r.coll.FindOne(ctx, filter, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up cost basis for %s: %w", symbol, err)
	}

	return record.Price, nil
}
