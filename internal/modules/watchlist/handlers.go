package watchlist

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
)

// Source fetches the stored watchlist documents.
type Source interface {
	GetAll(ctx context.Context) ([]bson.D, error)
}

// Handler handles watchlist HTTP requests
type Handler struct {
	source   Source
	enricher *Enricher
	log      zerolog.Logger
}

// NewHandler creates a new watchlist handler
func NewHandler(source Source, enricher *Enricher, log zerolog.Logger) *Handler {
	return &Handler{
		source:   source,
		enricher: enricher,
		log:      log.With().Str("handler", "watchlist").Logger(),
	}
}

// HandleGetWatchlist returns all watchlist documents enriched with prices
// GET /watchlist
func (h *Handler) HandleGetWatchlist(w http.ResponseWriter, r *http.Request) {
	docs, err := h.source.GetAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get watchlist")
		h.writeError(w, http.StatusInternalServerError, "failed to load watchlist")
		return
	}

	enriched := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		enriched = append(enriched, h.enricher.Enrich(r.Context(), doc))
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"watchlist": enriched,
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
