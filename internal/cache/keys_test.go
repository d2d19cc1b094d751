package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agrilink-api/internal/config"
)

func TestKeyShapes(t *testing.T) {
	assert.Equal(t, "agrilink:market:quotes:all", MarketQuotesKey("all"))
	assert.Equal(t, "agrilink:market:quotes:Greater Accra", MarketQuotesKey("Greater Accra"))
	assert.Equal(t, "agrilink:weather:Kumasi", WeatherKey("Kumasi"))
	assert.Equal(t, "agrilink:chat:unread:u-123", UnreadCountKey("u-123"))
	assert.Equal(t, "agrilink:marketplace:listings:Volta", ListingsKey("Volta"))
	assert.Equal(t, "agrilink:notify:toast", ToastChannel())
	assert.Equal(t, "agrilink:feed:crop_listings", ChangeFeedChannel("crop_listings"))
}

func TestFormatKeySkipsEmptyParts(t *testing.T) {
	assert.Equal(t, "agrilink:market:quotes", MarketQuotesKey(""))
	assert.Equal(t, "agrilink:weather", WeatherKey("  "))
}

func TestNewTTLSet(t *testing.T) {
	ttl := NewTTLSet(config.CacheTTL{Short: 5, Medium: 30, Long: 600})
	assert.Equal(t, 5*time.Second, ttl.Short)
	assert.Equal(t, 30*time.Second, ttl.Medium)
	assert.Equal(t, 10*time.Minute, ttl.Long)

	assert.Equal(t, ttl.Medium, MarketQuotesTTL(ttl))
	assert.Equal(t, ttl.Medium, WeatherTTL(ttl))
	assert.Equal(t, ttl.Short, UnreadCountTTL(ttl))
	assert.Equal(t, ttl.Short, ListingsTTL(ttl))
}

func TestNewTTLSetDefaults(t *testing.T) {
	ttl := NewTTLSet(config.CacheTTL{})
	assert.Equal(t, 10*time.Second, ttl.Short)
	assert.Equal(t, time.Minute, ttl.Medium)
	assert.Equal(t, 5*time.Minute, ttl.Long)
}

func TestTTLSetDurationByClass(t *testing.T) {
	ttl := NewTTLSet(config.CacheTTL{Short: 1, Medium: 2, Long: 3})
	assert.Equal(t, time.Second, ttl.Duration(TTLShort))
	assert.Equal(t, 2*time.Second, ttl.Duration(TTLMedium))
	assert.Equal(t, 3*time.Second, ttl.Duration(TTLLong))
	assert.Equal(t, time.Duration(0), ttl.Duration(TTLClass("bogus")))
}
