package trades

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

// Ledger is the trade history contract the handler depends on.
type Ledger interface {
	GetHistory(ctx context.Context, limit int64) ([]Record, error)
}

// Handler handles trade HTTP requests
type Handler struct {
	ledger Ledger
	log    zerolog.Logger
}

// NewHandler creates a new trades handler
func NewHandler(ledger Ledger, log zerolog.Logger) *Handler {
	return &Handler{
		ledger: ledger,
		log:    log.With().Str("handler", "trades").Logger(),
	}
}

// HandleGetTrades returns the trade ledger, most recent first
// GET /trades?limit=N
func (h *Handler) HandleGetTrades(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := h.ledger.GetHistory(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get trades")
		h.writeError(w, http.StatusInternalServerError, "failed to load trades")
		return
	}
	if records == nil {
		records = []Record{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"trades": records,
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
