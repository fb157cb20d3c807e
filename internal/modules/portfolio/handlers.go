package portfolio

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
)

// SummarySource fetches the stored summary document.
type SummarySource interface {
	GetSummaryDocument(ctx context.Context) (bson.D, error)
}

// Handler handles portfolio summary HTTP requests
type Handler struct {
	source   SummarySource
	valuator *Valuator
	log      zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(source SummarySource, valuator *Valuator, log zerolog.Logger) *Handler {
	return &Handler{
		source:   source,
		valuator: valuator,
		log:      log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleGetSummary returns the valued portfolio summary
// GET /summary
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	doc, err := h.source.GetSummaryDocument(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get summary document")
		h.writeError(w, http.StatusInternalServerError, "failed to load summary")
		return
	}
	if doc == nil {
		h.writeError(w, http.StatusNotFound, "Summary data not found")
		return
	}

	parsed, err := ParseSummaryDocument(doc)
	if err != nil {
		h.log.Error().Err(err).Msg("Malformed summary document")
		h.writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}

	summary, err := h.valuator.Valuate(r.Context(), parsed)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to valuate portfolio")
		h.writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"summary": summary,
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
