//go:build integration
// +build integration

package repo_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/cache"

	appconfig "agrilink-api/internal/config"
	"agrilink-api/internal/svc"
	"agrilink-api/pkg/confkit"
	"agrilink-api/pkg/priceengine"
)

func newIntegrationServiceContext(t *testing.T) *svc.ServiceContext {
	t.Helper()
	cfg := appconfig.MustLoad(confkit.MustProjectPath("etc/agrilink.yaml"))
	return svc.NewServiceContext(*cfg)
}

func TestPostgresConnectivity(t *testing.T) {
	svcCtx := newIntegrationServiceContext(t)
	db := requirePostgres(t, svcCtx)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var one int
	err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
	assert.NoError(t, err, "postgres connectivity check failed")
	assert.Equal(t, 1, one, "postgres returned unexpected value")
}

func TestRedisConnectivity(t *testing.T) {
	svcCtx := newIntegrationServiceContext(t)
	cacheClient := requireCache(t, svcCtx)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	key := fmt.Sprintf("agrilink:integration:%d", time.Now().UnixNano())
	const payload = "ok"

	err := cacheClient.SetWithExpireCtx(ctx, key, payload, 10*time.Second)
	assert.NoError(t, err, "cache set failed")
	defer cacheClient.DelCtx(context.Background(), key)

	var value string
	err = cacheClient.GetCtx(ctx, key, &value)
	assert.NoError(t, err, "cache get failed")
	assert.Equal(t, payload, value, "cache value mismatch")
}

func TestMarketPricesRoundTrip(t *testing.T) {
	svcCtx := newIntegrationServiceContext(t)
	requirePostgres(t, svcCtx)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	region := fmt.Sprintf("it-region-%d", time.Now().UnixNano())
	now := time.Now().UTC().Truncate(time.Microsecond)
	quotes := []priceengine.Quote{
		{Crop: "Maize", Price: 9.78, Unit: "kg", Change: 1.2, Region: region, UpdatedAt: now},
		{Crop: "Cocoa", Price: 26.10, Unit: "kg", Change: -0.4, Region: region, UpdatedAt: now},
	}

	store := svcCtx.Repos.MarketPrices
	require.NoError(t, store.InsertQuotes(ctx, quotes))
	defer store.DeleteOlderThan(context.Background(), time.Now().Add(time.Hour))

	got, err := store.LatestQuotes(ctx, region)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, region, got[0].Region)

	recent, err := store.RecentPrices(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 9.78, recent[priceengine.PriceKey("Maize", region)])
}

func requirePostgres(t *testing.T, svcCtx *svc.ServiceContext) *sql.DB {
	t.Helper()
	if svcCtx.DBConn == nil {
		t.Skip("Postgres not configured (DBConn nil)")
	}
	raw, err := svcCtx.DBConn.RawDB()
	if err != nil {
		t.Fatalf("failed to obtain postgres handle: %v", err)
	}
	return raw
}

func requireCache(t *testing.T, svcCtx *svc.ServiceContext) cache.Cache {
	t.Helper()
	if svcCtx.Cache == nil {
		t.Skip("cache not configured (Cache nil)")
	}
	return svcCtx.Cache
}
