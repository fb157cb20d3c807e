// Package watchlist serves the sector watchlist enriched with live quotes.
package watchlist

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/example/tradeboard/internal/modules/prices"
	"github.com/example/tradeboard/internal/store"
)

// PriceResolver resolves a batch of symbols to quotes.
type PriceResolver interface {
	ResolvePrices(ctx context.Context, symbols []string) map[string]prices.Quote
}

// Enricher attaches resolved prices to stored watchlist documents.
type Enricher struct {
	prices PriceResolver
	log    zerolog.Logger
}

// NewEnricher creates a new watchlist enricher
func NewEnricher(priceResolver PriceResolver, log zerolog.Logger) *Enricher {
	return &Enricher{
		prices: priceResolver,
		log:    log.With().Str("service", "enricher").Logger(),
	}
}

// Enrich returns the document's fields as a JSON-safe map with a "prices"
// field holding one quote per unique watched symbol, resolved in a single
// batched call. Enrichment is best-effort: a document without a usable
// sector_watchlists field is returned as-is, without a prices field, so a
// malformed document never blocks retrieval.
func (e *Enricher) Enrich(ctx context.Context, doc bson.D) map[string]interface{} {
	out := make(map[string]interface{}, len(doc)+1)

	var symbols []string
	found := false
	for _, el := range doc {
		if el.Key == "_id" {
			continue
		}
		if el.Key == "sector_watchlists" {
			if flattened, ok := FlattenSectors(el.Value); ok {
				symbols = flattened
				found = true
			} else {
				e.log.Warn().Msg("Watchlist document has malformed sector_watchlists, skipping enrichment")
			}
		}
		out[el.Key] = store.Normalize(el.Value)
	}

	if !found {
		return out
	}

	out["prices"] = e.prices.ResolvePrices(ctx, symbols)
	return out
}

// FlattenSectors flattens a sector_watchlists value into a deduplicated
// symbol list in first-occurrence order, walking sectors in document order
// so identical documents always produce the identical fetch batch. Empty and
// non-string entries are dropped; a sector whose value is not a list is
// skipped. The bool is false when the value is not a document at all.
func FlattenSectors(v interface{}) ([]string, bool) {
	sectors, ok := v.(bson.D)
	if !ok {
		return nil, false
	}

	symbols := make([]string, 0)
	seen := make(map[string]bool)
	for _, sector := range sectors {
		list, ok := sector.Value.(bson.A)
		if !ok {
			continue
		}
		for _, item := range list {
			symbol, ok := item.(string)
			if !ok {
				continue
			}
			symbol = strings.TrimSpace(symbol)
			if symbol == "" || seen[symbol] {
				continue
			}
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}

	return symbols, true
}

// SymbolsFromDocuments flattens every watchlist document into one
// deduplicated symbol list, first occurrence winning across documents.
func SymbolsFromDocuments(docs []bson.D) []string {
	symbols := make([]string, 0)
	seen := make(map[string]bool)
	for _, doc := range docs {
		for _, el := range doc {
			if el.Key != "sector_watchlists" {
				continue
			}
			flattened, ok := FlattenSectors(el.Value)
			if !ok {
				continue
			}
			for _, symbol := range flattened {
				if seen[symbol] {
					continue
				}
				seen[symbol] = true
				symbols = append(symbols, symbol)
			}
		}
	}
	return symbols
}
