package priceengine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrilink-api/pkg/catalog"
)

type fakeStore struct {
	latest    []Quote
	latestErr error

	recent    map[string]float64
	recentErr error

	deleteErr   error
	deletedUpTo time.Time

	insertErr error
	inserted  [][]Quote
}

func (s *fakeStore) LatestQuotes(ctx context.Context, region string) ([]Quote, error) {
	if s.latestErr != nil {
		return nil, s.latestErr
	}
	if region == catalog.AllRegions {
		return s.latest, nil
	}
	var out []Quote
	for _, q := range s.latest {
		if q.Region == region {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeStore) RecentPrices(ctx context.Context, limit int) (map[string]float64, error) {
	if s.recentErr != nil {
		return nil, s.recentErr
	}
	return s.recent, nil
}

func (s *fakeStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	s.deletedUpTo = cutoff
	return s.deleteErr
}

func (s *fakeStore) InsertQuotes(ctx context.Context, quotes []Quote) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, quotes)
	return nil
}

type fakeNotifier struct {
	alerts []string
}

func (n *fakeNotifier) Alert(_ context.Context, message string) {
	n.alerts = append(n.alerts, message)
}

type fakeFeed struct {
	prices map[string]float64
	calls  int
}

func (f *fakeFeed) Prices(context.Context) map[string]float64 {
	f.calls++
	return f.prices
}

func newTestEngine(t *testing.T, store *fakeStore, notifier *fakeNotifier, feed FeedSource) *Engine {
	t.Helper()
	cat, err := catalog.Load("")
	require.NoError(t, err)
	eng, err := New(Config{
		Store:    store,
		Catalog:  cat,
		Feed:     feed,
		Notifier: notifier,
		Rand:     NewSeededRand(7),
	})
	require.NoError(t, err)
	return eng
}

func TestGetQuotesServesFreshRowsWithoutWriting(t *testing.T) {
	now := time.Now()
	store := &fakeStore{
		latest: []Quote{
			{Crop: "Maize", Price: 9.78, Unit: "kg", Region: "Greater Accra", UpdatedAt: now.Add(-1 * time.Hour)},
		},
	}
	eng := newTestEngine(t, store, &fakeNotifier{}, nil)

	quotes, err := eng.GetQuotes(context.Background(), "Greater Accra")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Maize", quotes[0].Crop)
	assert.Empty(t, store.inserted, "fresh reads must not write")
}

func TestGetQuotesRegeneratesWhenStale(t *testing.T) {
	now := time.Now()
	store := &fakeStore{
		latest: []Quote{
			{Crop: "Maize", Price: 9.78, Unit: "kg", Region: "Ashanti Region", UpdatedAt: now.Add(-25 * time.Hour)},
		},
	}
	feed := &fakeFeed{prices: map[string]float64{"CORN": 4064}}
	eng := newTestEngine(t, store, &fakeNotifier{}, feed)

	quotes, err := eng.GetQuotes(context.Background(), catalog.AllRegions)
	require.NoError(t, err)
	require.NotEmpty(t, quotes)

	assert.Equal(t, 1, feed.calls, "feed chain fetched exactly once per regeneration")
	require.Len(t, store.inserted, 1)
	assert.Equal(t, quotes, store.inserted[0])
	assert.WithinDuration(t, now.Add(-FreshFor), store.deletedUpTo, 2*time.Second)

	// 16 regions x 2-4 crops each.
	assert.GreaterOrEqual(t, len(quotes), 2*16)
	assert.LessOrEqual(t, len(quotes), 4*16)
	for _, q := range quotes {
		assert.Greater(t, q.Price, 0.0)
		assert.NotEmpty(t, q.Unit)
		assert.NotEqual(t, catalog.AllRegions, q.Region)
		assert.False(t, q.UpdatedAt.IsZero())
	}
}

func TestGetQuotesEmptyBoardRegenerates(t *testing.T) {
	store := &fakeStore{}
	eng := newTestEngine(t, store, &fakeNotifier{}, nil)

	quotes, err := eng.GetQuotes(context.Background(), "Northern Region")
	require.NoError(t, err)
	require.NotEmpty(t, quotes)
	for _, q := range quotes {
		assert.Equal(t, "Northern Region", q.Region)
	}
	assert.GreaterOrEqual(t, len(quotes), 2)
	assert.LessOrEqual(t, len(quotes), 4)
}

func TestGetQuotesEmptyRegionMeansAll(t *testing.T) {
	store := &fakeStore{}
	eng := newTestEngine(t, store, &fakeNotifier{}, nil)

	quotes, err := eng.GetQuotes(context.Background(), "")
	require.NoError(t, err)

	regions := map[string]bool{}
	for _, q := range quotes {
		regions[q.Region] = true
	}
	assert.Equal(t, 16, len(regions), "every region regenerated")
}

func TestGetQuotesReadFailureAlerts(t *testing.T) {
	store := &fakeStore{latestErr: errors.New("connection refused")}
	notifier := &fakeNotifier{}
	eng := newTestEngine(t, store, notifier, nil)

	_, err := eng.GetQuotes(context.Background(), "")
	require.Error(t, err)
	require.Len(t, notifier.alerts, 1)
	assert.Equal(t, "Could not update market prices", notifier.alerts[0])
}

func TestGetQuotesInsertFailureAlerts(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("disk full")}
	notifier := &fakeNotifier{}
	eng := newTestEngine(t, store, notifier, nil)

	_, err := eng.GetQuotes(context.Background(), "")
	require.Error(t, err)
	require.Len(t, notifier.alerts, 1)
	assert.Equal(t, "Failed to update market prices", notifier.alerts[0])
}

func TestRegenerateSurvivesRecentPriceFailure(t *testing.T) {
	store := &fakeStore{recentErr: errors.New("timeout")}
	eng := newTestEngine(t, store, &fakeNotifier{}, nil)

	quotes, err := eng.GetQuotes(context.Background(), "Volta Region")
	require.NoError(t, err, "history failure degrades to placeholder change")
	assert.NotEmpty(t, quotes)
}

func TestRegenerateSurvivesDeleteFailure(t *testing.T) {
	store := &fakeStore{deleteErr: errors.New("lock held")}
	eng := newTestEngine(t, store, &fakeNotifier{}, nil)

	quotes, err := eng.GetQuotes(context.Background(), "Volta Region")
	require.NoError(t, err, "expired-row cleanup failure must not block fresh data")
	assert.NotEmpty(t, quotes)
	require.Len(t, store.inserted, 1)
}

func TestRegenerateUsesStoredHistoryForChange(t *testing.T) {
	store := &fakeStore{
		recent: map[string]float64{},
	}
	cat, err := catalog.Load("")
	require.NoError(t, err)
	for _, crop := range cat.TradedCrops() {
		store.recent[PriceKey(crop, "Eastern Region")] = 10.00
	}

	eng := newTestEngine(t, store, &fakeNotifier{}, nil)
	quotes, err := eng.GetQuotes(context.Background(), "Eastern Region")
	require.NoError(t, err)
	require.NotEmpty(t, quotes)

	for _, q := range quotes {
		want := round1((q.Price - 10.00) / 10.00 * 100)
		assert.Equal(t, want, q.Change, "change computed against stored history for %s", q.Crop)
	}
}

func TestSampleCropsBounds(t *testing.T) {
	eng := newTestEngine(t, &fakeStore{}, &fakeNotifier{}, nil)

	for i := 0; i < 20; i++ {
		crops := eng.sampleCrops()
		assert.GreaterOrEqual(t, len(crops), 2)
		assert.LessOrEqual(t, len(crops), 4)
		seen := map[string]bool{}
		for _, c := range crops {
			assert.False(t, seen[c], "duplicate crop %s", c)
			seen[c] = true
		}
	}
}

func TestNewRequiresStoreAndCatalog(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	_, err = New(Config{Catalog: cat})
	assert.Error(t, err)

	_, err = New(Config{Store: &fakeStore{}})
	assert.Error(t, err)
}
