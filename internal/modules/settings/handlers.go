package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/example/tradeboard/internal/store"
)

// Source fetches the stored bot settings document.
type Source interface {
	Get(ctx context.Context) (bson.D, error)
}

// Handler handles bot settings HTTP requests
type Handler struct {
	source Source
	log    zerolog.Logger
}

// NewHandler creates a new settings handler
func NewHandler(source Source, log zerolog.Logger) *Handler {
	return &Handler{
		source: source,
		log:    log.With().Str("handler", "settings").Logger(),
	}
}

// HandleGetBotSettings returns the bot settings document
// GET /bot_settings
func (h *Handler) HandleGetBotSettings(w http.ResponseWriter, r *http.Request) {
	doc, err := h.source.Get(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get bot settings")
		h.writeError(w, http.StatusInternalServerError, "failed to load bot settings")
		return
	}
	if doc == nil {
		h.writeError(w, http.StatusNotFound, "Bot settings not found")
		return
	}

	normalized, _ := store.Normalize(doc).(map[string]interface{})
	delete(normalized, "_id")

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"bot_settings": normalized,
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
