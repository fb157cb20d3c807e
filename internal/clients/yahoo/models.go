package yahoo

// Snapshot holds the two price fields the dashboard needs per symbol.
// A zero Price with a non-zero PreviousClose means no live trade was
// available (market closed).
type Snapshot struct {
	Price         float64
	PreviousClose float64
}

// quoteResponse represents the response from the Yahoo Finance quote API
type quoteResponse struct {
	QuoteResponse struct {
		Result []map[string]interface{} `json:"result"`
		Error  interface{}              `json:"error"`
	} `json:"quoteResponse"`
}

// Helper functions to safely extract values from a quote entry

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getFloat64OrZero(m map[string]interface{}, key string) float64 {
	if v, ok := m[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return 0
}
