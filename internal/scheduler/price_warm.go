package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/example/tradeboard/internal/modules/prices"
	"github.com/example/tradeboard/internal/modules/watchlist"
)

// WatchlistSource fetches the stored watchlist documents.
type WatchlistSource interface {
	GetAll(ctx context.Context) ([]bson.D, error)
}

// PriceWarmJob resolves prices for every watched symbol on a fixed interval
// so the dashboard's polling requests are served from a warm cache instead of
// waiting on the quote provider.
type PriceWarmJob struct {
	watchlists WatchlistSource
	resolver   prices.Resolver
	timeout    time.Duration
	log        zerolog.Logger
}

// NewPriceWarmJob creates a new price warm job
func NewPriceWarmJob(watchlists WatchlistSource, resolver prices.Resolver, timeout time.Duration, log zerolog.Logger) *PriceWarmJob {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PriceWarmJob{
		watchlists: watchlists,
		resolver:   resolver,
		timeout:    timeout,
		log:        log.With().Str("job", "price_warm").Logger(),
	}
}

// Name implements Job
func (j *PriceWarmJob) Name() string {
	return "price_warm"
}

// Run implements Job
func (j *PriceWarmJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	docs, err := j.watchlists.GetAll(ctx)
	if err != nil {
		return err
	}

	symbols := watchlist.SymbolsFromDocuments(docs)
	if len(symbols) == 0 {
		return nil
	}

	quotes := j.resolver.ResolvePrices(ctx, symbols)
	j.log.Debug().
		Int("symbols", len(symbols)).
		Int("resolved", len(quotes)).
		Msg("Warmed quote cache")

	return nil
}
