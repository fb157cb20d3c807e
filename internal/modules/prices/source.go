package prices

import (
	"context"

	"github.com/example/tradeboard/internal/clients/yahoo"
)

// SourceQuote is the raw per-symbol data a quote provider returns.
type SourceQuote struct {
	LastPrice     float64
	PreviousClose float64
}

// QuoteSource fetches raw quotes for a batch of symbols in one call.
// Symbols the provider does not know are absent from the returned map;
// an error means the whole batch failed.
type QuoteSource interface {
	FetchQuotes(ctx context.Context, symbols []string) (map[string]SourceQuote, error)
}

// YahooSource adapts the Yahoo Finance client to the QuoteSource interface.
type YahooSource struct {
	client *yahoo.Client
}

// NewYahooSource creates a Yahoo-backed quote source
func NewYahooSource(client *yahoo.Client) *YahooSource {
	return &YahooSource{client: client}
}

// FetchQuotes implements QuoteSource
func (s *YahooSource) FetchQuotes(ctx context.Context, symbols []string) (map[string]SourceQuote, error) {
	snapshots, err := s.client.FetchQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}

	quotes := make(map[string]SourceQuote, len(snapshots))
	for symbol, snap := range snapshots {
		quotes[symbol] = SourceQuote{
			LastPrice:     snap.Price,
			PreviousClose: snap.PreviousClose,
		}
	}
	return quotes, nil
}
