package prices

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// CashSymbol is the pseudo-symbol for uninvested cash. It is never quoted.
const CashSymbol = "cash"

// Service resolves symbols to quotes through the cache, fetching only what
// is stale or missing with a single batched source call.
type Service struct {
	cache  *QuoteCache
	source QuoteSource
	log    zerolog.Logger
	now    func() time.Time
}

// NewService creates a new price service
func NewService(cache *QuoteCache, source QuoteSource, log zerolog.Logger) *Service {
	return &Service{
		cache:  cache,
		source: source,
		log:    log.With().Str("service", "prices").Logger(),
		now:    time.Now,
	}
}

// ResolvePrices returns a quote per requested symbol. Cache hits are served
// directly; the remainder is fetched in one batched call and written back to
// the cache. The "cash" pseudo-symbol, empty entries, and duplicates are
// skipped; deduplication preserves first-seen order so identical inputs
// produce identical fetch batches. Symbols unknown to both cache and source
// are absent from the result, which callers must treat as an unknown price.
func (s *Service) ResolvePrices(ctx context.Context, symbols []string) map[string]Quote {
	now := s.now()
	quotes := make(map[string]Quote, len(symbols))

	var toFetch []string
	seen := make(map[string]bool, len(symbols))
	for _, symbol := range symbols {
		if symbol == "" || strings.EqualFold(symbol, CashSymbol) || seen[symbol] {
			continue
		}
		seen[symbol] = true

		if quote, ok := s.cache.Fresh(symbol, now); ok {
			quotes[symbol] = quote
			continue
		}
		toFetch = append(toFetch, symbol)
	}

	if len(toFetch) == 0 {
		return quotes
	}

	for symbol, quote := range s.fetchBatch(ctx, toFetch) {
		quotes[symbol] = quote
	}
	return quotes
}

// fetchBatch fetches quotes for the given symbols, isolating failures per
// symbol: a whole-batch failure yields a failure placeholder for every
// symbol, and a symbol with no usable data yields a placeholder without
// affecting its siblings. Only successfully interpreted quotes are cached,
// so failed symbols are retried on the next resolve.
func (s *Service) fetchBatch(ctx context.Context, symbols []string) map[string]Quote {
	quotes := make(map[string]Quote, len(symbols))

	fetched, err := s.source.FetchQuotes(ctx, symbols)
	if err != nil {
		s.log.Warn().Err(err).Int("symbols", len(symbols)).Msg("Batch quote fetch failed")
		for _, symbol := range symbols {
			quotes[symbol] = failureQuote()
		}
		return quotes
	}

	now := s.now()
	for _, symbol := range symbols {
		src, ok := fetched[symbol]
		if !ok {
			s.log.Debug().Str("symbol", symbol).Msg("Symbol not in quote response")
			continue
		}

		quote := interpretQuote(src)
		s.cache.Put(symbol, quote, now)
		quotes[symbol] = quote
	}
	return quotes
}
