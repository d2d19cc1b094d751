package alphavantage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchParsesLatestValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "COMMODITY_PRICES", r.URL.Query().Get("function"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		symbol := r.URL.Query().Get("symbol")
		fmt.Fprintf(w, `{"data":[{"date":"2025-08-01","value":"%s"},{"date":"2025-07-01","value":"1.00"}]}`,
			map[string]string{"CORN": "430.25", "RICE": "17.80", "COCOA": "2450.00"}[symbol])
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	prices, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 430.25, prices["CORN"])
	assert.Equal(t, 17.80, prices["RICE"])
	assert.Equal(t, 2450.00, prices["COCOA"])
}

func TestFetchOmitsFailedSymbols(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbol") == "RICE" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"data":[{"date":"2025-08-01","value":"100.5"}]}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	prices, err := client.Fetch(context.Background())
	require.NoError(t, err, "partial results are not an error")

	assert.Len(t, prices, 2)
	assert.NotContains(t, prices, "RICE")
}

func TestFetchFailsWhenEverySymbolErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchSkipsNonPositiveValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"date":"2025-08-01","value":"0"}]}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	prices, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestFetchHonoursContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"date":"2025-08-01","value":"100"}]}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("test-key", WithBaseURL(server.URL))
	_, err := client.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
