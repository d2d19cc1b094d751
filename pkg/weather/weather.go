// Package weather serves per-location forecasts with a short staleness gate.
// Real upstream feeds are not wired yet; stale entries are refreshed with a
// synthesized forecast so the display always has data.
package weather

import (
	"context"
	"fmt"
	"time"
)

// FreshFor is how long a stored forecast is served before regeneration.
const FreshFor = 30 * time.Minute

// Conditions a forecast can report.
const (
	ConditionSunny  = "sunny"
	ConditionCloudy = "cloudy"
	ConditionRainy  = "rainy"
)

var conditions = []string{ConditionSunny, ConditionCloudy, ConditionRainy}

// Forecast is one location's current weather summary.
type Forecast struct {
	Location     string
	Condition    string
	TemperatureC int
	Humidity     int
	ForecastDate time.Time
	UpdatedAt    time.Time
}

// Store is the durable forecast store.
type Store interface {
	// LatestForLocation returns the newest stored forecast for the location,
	// or ok=false when none exists.
	LatestForLocation(ctx context.Context, location string) (Forecast, bool, error)
	// Insert persists a freshly generated forecast.
	Insert(ctx context.Context, forecast Forecast) error
}

// Rand is the randomness source behind synthesized forecasts.
type Rand interface {
	Intn(n int) int
}

// Notifier surfaces refresh failures to the end user.
type Notifier interface {
	Alert(ctx context.Context, message string)
}

type nopNotifier struct{}

func (nopNotifier) Alert(context.Context, string) {}

// Service answers weather queries through the staleness gate.
type Service struct {
	store    Store
	rng      Rand
	notifier Notifier
	freshFor time.Duration
	nowFn    func() time.Time
}

// NewService wires a weather service. rng and notifier may be nil.
func NewService(store Store, rng Rand, notifier Notifier) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("weather: missing store")
	}
	if rng == nil {
		rng = defaultRand()
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{
		store:    store,
		rng:      rng,
		notifier: notifier,
		freshFor: FreshFor,
		nowFn:    time.Now,
	}, nil
}

// Current returns the forecast for a location, regenerating it when the
// stored one is older than the freshness window.
func (s *Service) Current(ctx context.Context, location string) (Forecast, error) {
	stored, ok, err := s.store.LatestForLocation(ctx, location)
	if err != nil {
		s.notifier.Alert(ctx, "Could not update weather data")
		return Forecast{}, fmt.Errorf("weather: load forecast: %w", err)
	}
	now := s.nowFn()
	if ok && now.Sub(stored.UpdatedAt) < s.freshFor {
		return stored, nil
	}

	forecast := s.generate(location, now)
	if err := s.store.Insert(ctx, forecast); err != nil {
		s.notifier.Alert(ctx, "Could not update weather data")
		return Forecast{}, fmt.Errorf("weather: store forecast: %w", err)
	}
	return forecast, nil
}

// generate synthesizes a plausible tropical forecast: 20-35 degrees C,
// 40-80% humidity.
func (s *Service) generate(location string, now time.Time) Forecast {
	return Forecast{
		Location:     location,
		Condition:    conditions[s.rng.Intn(len(conditions))],
		TemperatureC: s.rng.Intn(15) + 20,
		Humidity:     s.rng.Intn(40) + 40,
		ForecastDate: now.Truncate(24 * time.Hour),
		UpdatedAt:    now,
	}
}
