// Package store owns the MongoDB connection and the BSON-to-JSON boundary.
package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names in the trading database.
const (
	CollectionWatchlist   = "watchlist"
	CollectionTrades      = "trades"
	CollectionBotSettings = "bot_settings"
	CollectionSummary     = "summary"
)

// Store wraps the MongoDB client and database handle
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// Connect establishes and verifies the MongoDB connection
func Connect(ctx context.Context, uri, dbName string, log zerolog.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
		log:    log.With().Str("component", "store").Logger(),
	}, nil
}

// Close disconnects from MongoDB
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Database returns the database handle
func (s *Store) Database() *mongo.Database {
	return s.db
}
