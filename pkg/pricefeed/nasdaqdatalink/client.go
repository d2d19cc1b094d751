// Package nasdaqdatalink adapts Nasdaq Data Link (formerly Quandl)
// continuous futures datasets to the pricefeed.Provider contract.
package nasdaqdatalink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"agrilink-api/pkg/pricefeed"
)

const (
	defaultBaseURL     = "https://data.nasdaq.com"
	defaultHTTPTimeout = 10 * time.Second
)

// datasets maps continuous-front-month futures datasets to commodity codes.
var datasets = []struct {
	Code      string
	Commodity string
}{
	{Code: "CHRIS/ICE_CC1", Commodity: "COCOA"},
	{Code: "CHRIS/CME_C1", Commodity: "CORN"},
	{Code: "CHRIS/CME_RR1", Commodity: "RICE"},
}

// Client calls the Nasdaq Data Link datasets endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	name       string
}

// Option configures a new Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default endpoint URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// NewClient constructs a Nasdaq Data Link client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		name:       "nasdaqdatalink",
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// Name implements pricefeed.Provider.
func (c *Client) Name() string { return c.name }

type datasetResponse struct {
	Dataset struct {
		ColumnNames []string `json:"column_names"`
		Data        [][]any  `json:"data"`
	} `json:"dataset"`
}

// Fetch retrieves the latest settle price for each configured dataset.
// Individual dataset failures are logged and omitted.
func (c *Client) Fetch(ctx context.Context) (map[string]float64, error) {
	prices := make(map[string]float64, len(datasets))
	var lastErr error
	for _, ds := range datasets {
		price, err := c.fetchDataset(ctx, ds.Code)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logx.WithContext(ctx).Errorf("nasdaqdatalink: fetch %s: %v", ds.Code, err)
			lastErr = err
			continue
		}
		if price > 0 {
			prices[ds.Commodity] = price
		}
	}
	if len(prices) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return prices, nil
}

func (c *Client) fetchDataset(ctx context.Context, code string) (float64, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("rows", "1")
	query.Set("order", "desc")
	endpoint := fmt.Sprintf("%s/api/v3/datasets/%s.json?%s", c.baseURL, code, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("nasdaqdatalink: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("nasdaqdatalink: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("nasdaqdatalink: http status %d: %s", resp.StatusCode, string(body))
	}

	var payload datasetResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("nasdaqdatalink: decode response: %w", err)
	}
	if len(payload.Dataset.Data) == 0 {
		return 0, fmt.Errorf("nasdaqdatalink: empty data for %s", code)
	}

	// Settle is usually the first column after the date.
	settleIdx := 1
	for i, col := range payload.Dataset.ColumnNames {
		if col == "Settle" {
			settleIdx = i
			break
		}
	}
	row := payload.Dataset.Data[0]
	if settleIdx >= len(row) {
		return 0, fmt.Errorf("nasdaqdatalink: settle column out of range for %s", code)
	}
	value, ok := row[settleIdx].(float64)
	if !ok {
		return 0, fmt.Errorf("nasdaqdatalink: non-numeric settle for %s", code)
	}
	return value, nil
}

func init() {
	pricefeed.RegisterProvider("nasdaqdatalink", func(name string, cfg *pricefeed.ProviderConfig) (pricefeed.Provider, error) {
		opts := []Option{}
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		if cfg.HTTPTimeout > 0 {
			opts = append(opts, WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
		}
		client := NewClient(cfg.APIKey, opts...)
		client.name = name
		return client, nil
	})
}
