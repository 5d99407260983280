// Package api talks to the stock dashboard backend and normalizes its
// responses into view models
package api

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// Client fetches from the three backend endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a client for the given backend base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetLogger enables debug logging of requests. Each request line carries a
// short correlation id so interleaved fetches can be told apart.
func (c *Client) SetLogger(l *log.Logger) {
	c.logger = l
}

func (c *Client) debugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// get issues one GET and returns the status code and raw body. Transport
// failures come back as *NetworkError.
func (c *Client) get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	reqID := uuid.NewString()[:8]
	c.debugf("[%s] GET %s", reqID, u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.debugf("[%s] failed: %v", reqID, err)
		return 0, nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.debugf("[%s] read failed: %v", reqID, err)
		return 0, nil, &NetworkError{Err: err}
	}

	c.debugf("[%s] %d (%d bytes)", reqID, resp.StatusCode, len(body))
	return resp.StatusCode, body, nil
}

// FetchStock queries the simple stock endpoint
func (c *Client) FetchStock(ctx context.Context, symbol string) (*view.StockView, error) {
	query := url.Values{"symbol": {symbol}}
	status, body, err := c.get(ctx, "/api/stock", query)
	if err != nil {
		return nil, err
	}
	return NormalizeStock(status, body)
}

// FetchStockData queries the enhanced stock endpoint
func (c *Client) FetchStockData(ctx context.Context, symbol, period, interval, analysisType string) (*view.StockView, error) {
	query := url.Values{
		"symbol":        {symbol},
		"period":        {period},
		"interval":      {interval},
		"analysis_type": {analysisType},
	}
	status, body, err := c.get(ctx, "/api/stock_data", query)
	if err != nil {
		return nil, err
	}
	return NormalizeStockData(symbol, status, body)
}

// FetchMarketOverview queries the market overview endpoint
func (c *Client) FetchMarketOverview(ctx context.Context) (view.MarketOverview, error) {
	status, body, err := c.get(ctx, "/api/market_overview", nil)
	if err != nil {
		return nil, err
	}
	return NormalizeOverview(status, body)
}
