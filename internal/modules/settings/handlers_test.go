package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubSource struct {
	doc bson.D
	err error
}

func (s *stubSource) Get(ctx context.Context) (bson.D, error) {
	return s.doc, s.err
}

func serveBotSettings(t *testing.T, source Source) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(source, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/bot_settings", nil)
	w := httptest.NewRecorder()
	handler.HandleGetBotSettings(w, req)
	return w
}

func TestHandleGetBotSettings_OK(t *testing.T) {
	threshold, err := primitive.ParseDecimal128("0.05")
	require.NoError(t, err)

	source := &stubSource{doc: bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "strategy", Value: "momentum"},
		{Key: "buy_threshold", Value: threshold},
	}}

	w := serveBotSettings(t, source)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		BotSettings map[string]interface{} `json:"bot_settings"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "momentum", body.BotSettings["strategy"])
	assert.Equal(t, 0.05, body.BotSettings["buy_threshold"])
	assert.NotContains(t, body.BotSettings, "_id")
}

func TestHandleGetBotSettings_MissingDocumentIs404(t *testing.T) {
	w := serveBotSettings(t, &stubSource{doc: nil})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Bot settings not found", body["error"])
}

func TestHandleGetBotSettings_StorageFailureIs500(t *testing.T) {
	w := serveBotSettings(t, &stubSource{err: fmt.Errorf("connection reset")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
