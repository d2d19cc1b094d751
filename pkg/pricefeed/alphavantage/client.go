// Package alphavantage adapts the Alpha Vantage commodity price endpoint to
// the pricefeed.Provider contract.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"agrilink-api/pkg/pricefeed"
)

const (
	defaultBaseURL     = "https://www.alphavantage.co"
	defaultHTTPTimeout = 10 * time.Second
)

// symbols lists the commodities requested from the feed. Only futures with a
// crop mapping in the catalog are worth the quota.
var symbols = []string{"CORN", "RICE", "COCOA"}

// Client calls the Alpha Vantage query endpoint.
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

// NewClient constructs an Alpha Vantage client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		name:       "alphavantage",
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

// commodityResponse mirrors the feed's time-series payload; data is ordered
// newest first.
type commodityResponse struct {
	Data []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"data"`
}

// Fetch retrieves the latest value for each known commodity. Symbols that
// fail are logged and omitted; the whole call fails only when no symbol
// produced data and at least one request errored.
func (c *Client) Fetch(ctx context.Context) (map[string]float64, error) {
	prices := make(map[string]float64, len(symbols))
	var lastErr error
	for _, symbol := range symbols {
		price, err := c.fetchSymbol(ctx, symbol)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logx.WithContext(ctx).Errorf("alphavantage: fetch %s: %v", symbol, err)
			lastErr = err
			continue
		}
		if price > 0 {
			prices[symbol] = price
		}
	}
	if len(prices) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return prices, nil
}

func (c *Client) fetchSymbol(ctx context.Context, symbol string) (float64, error) {
	query := url.Values{}
	query.Set("function", "COMMODITY_PRICES")
	query.Set("symbol", symbol)
	query.Set("apikey", c.apiKey)
	endpoint := fmt.Sprintf("%s/query?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("alphavantage: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("alphavantage: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("alphavantage: http status %d: %s", resp.StatusCode, string(body))
	}

	var payload commodityResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("alphavantage: decode response: %w", err)
	}
	if len(payload.Data) == 0 {
		return 0, fmt.Errorf("alphavantage: empty data for %s", symbol)
	}
	price, err := strconv.ParseFloat(payload.Data[0].Value, 64)
	if err != nil {
		return 0, fmt.Errorf("alphavantage: parse value %q: %w", payload.Data[0].Value, err)
	}
	return price, nil
}

func init() {
	pricefeed.RegisterProvider("alphavantage", func(name string, cfg *pricefeed.ProviderConfig) (pricefeed.Provider, error) {
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
