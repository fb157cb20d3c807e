package portfolio

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

	"github.com/example/tradeboard/internal/modules/prices"
)

type stubSummarySource struct {
	doc bson.D
	err error
}

func (s *stubSummarySource) GetSummaryDocument(ctx context.Context) (bson.D, error) {
	return s.doc, s.err
}

func serveSummary(t *testing.T, source SummarySource, valuator *Valuator) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(source, valuator, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	w := httptest.NewRecorder()
	handler.HandleGetSummary(w, req)
	return w
}

func TestHandleGetSummary_OK(t *testing.T) {
	source := &stubSummarySource{doc: bson.D{
		{Key: "balance", Value: 1000.0},
		{Key: "portfolio", Value: bson.D{{Key: "AAPL", Value: 10.0}}},
	}}
	priceResolver := &stubPrices{quotes: map[string]prices.Quote{"AAPL": {Price: 150}}}
	valuator := NewValuator(priceResolver, &stubLedger{buyPrices: map[string]float64{"AAPL": 100}}, zerolog.Nop())

	w := serveSummary(t, source, valuator)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Summary Summary `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 1000.0, body.Summary.Balance)
	require.Len(t, body.Summary.Holdings, 1)
	assert.Equal(t, 1500.0, body.Summary.Holdings[0].CurrentValue)
	assert.Equal(t, 2500.0, body.Summary.TotalValue)
}

func TestHandleGetSummary_MissingDocumentIs404(t *testing.T) {
	valuator := NewValuator(&stubPrices{}, &stubLedger{}, zerolog.Nop())

	w := serveSummary(t, &stubSummarySource{doc: nil}, valuator)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Summary data not found", body["error"])
}

func TestHandleGetSummary_StorageFailureIs500(t *testing.T) {
	valuator := NewValuator(&stubPrices{}, &stubLedger{}, zerolog.Nop())
	source := &stubSummarySource{err: fmt.Errorf("connection reset")}

	w := serveSummary(t, source, valuator)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleGetSummary_MalformedDocumentIs500(t *testing.T) {
	valuator := NewValuator(&stubPrices{}, &stubLedger{}, zerolog.Nop())
	source := &stubSummarySource{doc: bson.D{{Key: "balance", Value: "lots"}}}

	w := serveSummary(t, source, valuator)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleGetSummary_ComputationFailureIs500(t *testing.T) {
	source := &stubSummarySource{doc: bson.D{
		{Key: "portfolio", Value: bson.D{{Key: "AAPL", Value: 10.0}}},
	}}
	valuator := NewValuator(&stubPrices{}, &stubLedger{err: fmt.Errorf("ledger down")}, zerolog.Nop())

	w := serveSummary(t, source, valuator)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
