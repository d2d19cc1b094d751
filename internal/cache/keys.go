// Package cache centralizes Redis key construction and TTL policy so key
// shapes stay consistent across repos, logic and the cron refresher.
package cache

import (
	"strings"
	"time"

	"agrilink-api/internal/config"
)

// Namespace is the Redis key prefix for the AgriLink application.
const Namespace = "agrilink"

// TTLClass represents a config-driven TTL bucket.
type TTLClass string

const (
	TTLShort  TTLClass = "short"
	TTLMedium TTLClass = "medium"
	TTLLong   TTLClass = "long"
)

// TTLSet normalises cache TTLs from config into time.Duration values.
type TTLSet struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// NewTTLSet converts config TTLs (in seconds) into durations.
func NewTTLSet(cfg config.CacheTTL) TTLSet {
	return TTLSet{
		Short:  durationOrDefault(cfg.Short, 10*time.Second),
		Medium: durationOrDefault(cfg.Medium, time.Minute),
		Long:   durationOrDefault(cfg.Long, 5*time.Minute),
	}
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds < 0 {
		return 0
	}
	if seconds == 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// Duration returns the configured duration for the given TTL class.
func (t TTLSet) Duration(class TTLClass) time.Duration {
	switch class {
	case TTLShort:
		return t.Short
	case TTLMedium:
		return t.Medium
	case TTLLong:
		return t.Long
	default:
		return 0
	}
}

func formatKey(parts ...string) string {
	values := make([]string, 0, len(parts)+1)
	values = append(values, Namespace)
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		values = append(values, clean)
	}
	return strings.Join(values, ":")
}

// --- Market Keys ------------------------------------------------------------

// MarketQuotesKey caches the rendered quote set per region filter.
func MarketQuotesKey(region string) string {
	return formatKey("market", "quotes", region)
}

// MarketQuotesTTL returns the TTL for quote set payloads. The durable store
// owns staleness; Redis only shaves repeat reads within a session.
func MarketQuotesTTL(ttl TTLSet) time.Duration {
	return ttl.Duration(TTLMedium)
}

// --- Weather Keys -----------------------------------------------------------

// WeatherKey caches the current forecast per location.
func WeatherKey(location string) string {
	return formatKey("weather", location)
}

// WeatherTTL returns the TTL for forecast payloads.
func WeatherTTL(ttl TTLSet) time.Duration {
	return ttl.Duration(TTLMedium)
}

// --- Messaging Keys ---------------------------------------------------------

// UnreadCountKey caches the unread message badge per user.
func UnreadCountKey(userID string) string {
	return formatKey("chat", "unread", userID)
}

// UnreadCountTTL returns the TTL for unread badges; short, the badge must
// react quickly to reads.
func UnreadCountTTL(ttl TTLSet) time.Duration {
	return ttl.Duration(TTLShort)
}

// --- Marketplace Keys -------------------------------------------------------

// ListingsKey caches the first marketplace page per location filter.
func ListingsKey(location string) string {
	return formatKey("marketplace", "listings", location)
}

// ListingsTTL returns the TTL for listing pages.
func ListingsTTL(ttl TTLSet) time.Duration {
	return ttl.Duration(TTLShort)
}

// --- Notification Channels --------------------------------------------------

// ToastChannel is the pub/sub channel carrying user-facing alerts.
func ToastChannel() string {
	return formatKey("notify", "toast")
}

// ChangeFeedChannel carries table change events to realtime subscribers.
func ChangeFeedChannel(table string) string {
	return formatKey("feed", table)
}
