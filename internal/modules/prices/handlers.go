package prices

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Resolver is the price-resolution contract handlers depend on.
type Resolver interface {
	ResolvePrices(ctx context.Context, symbols []string) map[string]Quote
}

// Handler handles stock price HTTP requests
type Handler struct {
	resolver Resolver
	log      zerolog.Logger
}

// NewHandler creates a new prices handler
func NewHandler(resolver Resolver, log zerolog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		log:      log.With().Str("handler", "prices").Logger(),
	}
}

// HandleGetStockPrice returns the quote for a single symbol
// GET /stock_price/{symbol}
func (h *Handler) HandleGetStockPrice(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimSpace(chi.URLParam(r, "symbol"))
	if symbol == "" {
		h.writeError(w, http.StatusNotFound, "symbol is required")
		return
	}

	quotes := h.resolver.ResolvePrices(r.Context(), []string{symbol})

	quote, ok := quotes[symbol]
	if !ok || (quote.Price == 0 && quote.PreviousClose == 0) {
		h.writeError(w, http.StatusNotFound, "price not found for symbol "+symbol)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":        symbol,
		"price":         quote.Price,
		"change":        quote.Change,
		"changePercent": quote.ChangePercent,
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
