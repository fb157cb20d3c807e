package trades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLedger struct {
	records  []Record
	err      error
	gotLimit int64
}

func (s *stubLedger) GetHistory(ctx context.Context, limit int64) ([]Record, error) {
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && int64(len(s.records)) > limit {
		return s.records[:limit], nil
	}
	return s.records, nil
}

func TestHandleGetTrades_OK(t *testing.T) {
	ledger := &stubLedger{records: []Record{
		{Ticker: "AAPL", Action: ActionBuy, Shares: 10, Price: 150, Amount: 1500, Timestamp: time.Now()},
		{Ticker: "MSFT", Action: ActionSell, Shares: 2, Price: 410, Amount: 820, Timestamp: time.Now()},
	}}
	handler := NewHandler(ledger, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/trades", nil)
	w := httptest.NewRecorder()
	handler.HandleGetTrades(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Trades []Record `json:"trades"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body.Trades, 2)
	assert.Equal(t, "AAPL", body.Trades[0].Ticker)
	assert.Equal(t, ActionBuy, body.Trades[0].Action)
}

func TestHandleGetTrades_EmptyLedgerIsEmptyArray(t *testing.T) {
	handler := NewHandler(&stubLedger{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/trades", nil)
	w := httptest.NewRecorder()
	handler.HandleGetTrades(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"trades":[]}`, w.Body.String())
}

func TestHandleGetTrades_LimitParam(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int64
	}{
		{"no limit", "", 0},
		{"valid limit", "?limit=5", 5},
		{"zero ignored", "?limit=0", 0},
		{"negative ignored", "?limit=-3", 0},
		{"non-numeric ignored", "?limit=abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &stubLedger{}
			handler := NewHandler(ledger, zerolog.Nop())

			req := httptest.NewRequest(http.MethodGet, "/trades"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.HandleGetTrades(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantLimit, ledger.gotLimit)
		})
	}
}

func TestHandleGetTrades_StorageFailure(t *testing.T) {
	handler := NewHandler(&stubLedger{err: fmt.Errorf("connection reset")}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/trades", nil)
	w := httptest.NewRecorder()
	handler.HandleGetTrades(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
}
