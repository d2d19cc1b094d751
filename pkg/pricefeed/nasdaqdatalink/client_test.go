package nasdaqdatalink

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchExtractsSettleColumn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/api/v3/datasets/"))
		assert.Equal(t, "1", r.URL.Query().Get("rows"))
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		fmt.Fprint(w, `{"dataset":{"column_names":["Date","Open","High","Low","Settle"],"data":[["2025-08-01",1.0,2.0,0.5,2450.75]]}}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	prices, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2450.75, prices["COCOA"])
	assert.Equal(t, 2450.75, prices["CORN"])
	assert.Equal(t, 2450.75, prices["RICE"])
}

func TestFetchDefaultsToSecondColumn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No Settle column: the value after the date is used.
		fmt.Fprint(w, `{"dataset":{"column_names":["Date","Value"],"data":[["2025-08-01",431.5]]}}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	prices, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 431.5, prices["CORN"])
}

func TestFetchOmitsFailedDatasets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "ICE_CC1") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"dataset":{"column_names":["Date","Settle"],"data":[["2025-08-01",17.25]]}}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	prices, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, prices, "COCOA")
	assert.Equal(t, 17.25, prices["CORN"])
	assert.Equal(t, 17.25, prices["RICE"])
}

func TestFetchFailsWhenEveryDatasetErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchRejectsNonNumericSettle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"dataset":{"column_names":["Date","Settle"],"data":[["2025-08-01","n/a"]]}}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}
