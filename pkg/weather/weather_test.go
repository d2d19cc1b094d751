package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	stored    map[string]Forecast
	latestErr error
	insertErr error
	inserts   int
}

func (s *fakeStore) LatestForLocation(_ context.Context, location string) (Forecast, bool, error) {
	if s.latestErr != nil {
		return Forecast{}, false, s.latestErr
	}
	f, ok := s.stored[location]
	return f, ok, nil
}

func (s *fakeStore) Insert(_ context.Context, forecast Forecast) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserts++
	if s.stored == nil {
		s.stored = map[string]Forecast{}
	}
	s.stored[forecast.Location] = forecast
	return nil
}

type fixedIntn struct{ n int }

func (r fixedIntn) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

type recordingNotifier struct {
	alerts []string
}

func (n *recordingNotifier) Alert(_ context.Context, message string) {
	n.alerts = append(n.alerts, message)
}

func TestCurrentServesFreshForecast(t *testing.T) {
	now := time.Now()
	store := &fakeStore{stored: map[string]Forecast{
		"Kumasi": {Location: "Kumasi", Condition: ConditionSunny, TemperatureC: 28, Humidity: 55, UpdatedAt: now.Add(-10 * time.Minute)},
	}}
	svc, err := NewService(store, fixedIntn{n: 0}, nil)
	require.NoError(t, err)

	f, err := svc.Current(context.Background(), "Kumasi")
	require.NoError(t, err)
	assert.Equal(t, 28, f.TemperatureC)
	assert.Zero(t, store.inserts, "fresh reads must not write")
}

func TestCurrentRegeneratesStaleForecast(t *testing.T) {
	now := time.Now()
	store := &fakeStore{stored: map[string]Forecast{
		"Tamale": {Location: "Tamale", Condition: ConditionRainy, TemperatureC: 22, Humidity: 70, UpdatedAt: now.Add(-45 * time.Minute)},
	}}
	svc, err := NewService(store, fixedIntn{n: 0}, nil)
	require.NoError(t, err)

	f, err := svc.Current(context.Background(), "Tamale")
	require.NoError(t, err)
	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, ConditionSunny, f.Condition, "Intn=0 picks the first condition")
	assert.Equal(t, 20, f.TemperatureC, "Intn=0 gives the floor temperature")
	assert.Equal(t, 40, f.Humidity, "Intn=0 gives the floor humidity")
}

func TestCurrentGeneratesWhenMissing(t *testing.T) {
	store := &fakeStore{}
	svc, err := NewService(store, fixedIntn{n: 14}, nil)
	require.NoError(t, err)

	f, err := svc.Current(context.Background(), "Accra")
	require.NoError(t, err)
	assert.Equal(t, "Accra", f.Location)
	assert.Equal(t, 34, f.TemperatureC, "Intn=14 gives the ceiling temperature")
	assert.Equal(t, 54, f.Humidity)
	assert.False(t, f.UpdatedAt.IsZero())
}

func TestGeneratedValuesStayInRange(t *testing.T) {
	store := &fakeStore{}
	svc, err := NewService(store, nil, nil)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		store.stored = nil
		f, err := svc.Current(context.Background(), "Cape Coast")
		require.NoError(t, err)
		assert.Contains(t, []string{ConditionSunny, ConditionCloudy, ConditionRainy}, f.Condition)
		assert.GreaterOrEqual(t, f.TemperatureC, 20)
		assert.LessOrEqual(t, f.TemperatureC, 34)
		assert.GreaterOrEqual(t, f.Humidity, 40)
		assert.LessOrEqual(t, f.Humidity, 79)
	}
}

func TestCurrentAlertsOnStoreFailures(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, err := NewService(&fakeStore{latestErr: errors.New("down")}, nil, notifier)
	require.NoError(t, err)

	_, err = svc.Current(context.Background(), "Ho")
	require.Error(t, err)
	require.Len(t, notifier.alerts, 1)
	assert.Equal(t, "Could not update weather data", notifier.alerts[0])

	notifier.alerts = nil
	svc, err = NewService(&fakeStore{insertErr: errors.New("full")}, nil, notifier)
	require.NoError(t, err)

	_, err = svc.Current(context.Background(), "Ho")
	require.Error(t, err)
	require.Len(t, notifier.alerts, 1)
}

func TestNewServiceRequiresStore(t *testing.T) {
	_, err := NewService(nil, nil, nil)
	assert.Error(t, err)
}
