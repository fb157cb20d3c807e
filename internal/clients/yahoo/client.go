// Package yahoo implements a batched Yahoo Finance quote client.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://query1.finance.yahoo.com/v7/finance/quote"

// Client is a Yahoo Finance API client
type Client struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewClient creates a new Yahoo Finance client
func NewClient(timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
		log:     log.With().Str("client", "yahoo").Logger(),
	}
}

// FetchQuotes fetches the latest price and previous close for all symbols in
// one batched request. The returned map is keyed by symbol; symbols Yahoo does
// not know are simply absent. A transport or parse failure fails the whole
// batch.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) (map[string]Snapshot, error) {
	if len(symbols) == 0 {
		return map[string]Snapshot{}, nil
	}

	info, err := c.getQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}

	quotes := make(map[string]Snapshot, len(info))
	for _, entry := range info {
		symbol := getString(entry, "symbol")
		if symbol == "" {
			continue
		}
		quotes[symbol] = Snapshot{
			Price:         getFloat64OrZero(entry, "regularMarketPrice"),
			PreviousClose: getFloat64OrZero(entry, "regularMarketPreviousClose"),
		}
	}

	return quotes, nil
}

// getQuotes fetches raw quote entries from the Yahoo Finance quote API
func (c *Client) getQuotes(ctx context.Context, symbols []string) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Add("symbols", strings.Join(symbols, ","))
	params.Add("fields", "symbol,regularMarketPrice,regularMarketPreviousClose")

	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers to mimic browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Yahoo Finance API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result quoteResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.QuoteResponse.Error)
	}

	return result.QuoteResponse.Result, nil
}
