package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"agrilink-api/pkg/catalog"
	"agrilink-api/pkg/priceengine"
)

// MarketPricesRepo persists the derived price board. It satisfies
// priceengine.Store.
type MarketPricesRepo interface {
	LatestQuotes(ctx context.Context, region string) ([]priceengine.Quote, error)
	RecentPrices(ctx context.Context, limit int) (map[string]float64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
	InsertQuotes(ctx context.Context, quotes []priceengine.Quote) error
}

type marketPricesRepo struct {
	conn sqlx.SqlConn
}

func newMarketPricesRepo(deps Dependencies) MarketPricesRepo {
	return &marketPricesRepo{
		conn: deps.DBConn,
	}
}

type marketPriceRow struct {
	Crop      string    `db:"crop"`
	Price     float64   `db:"price"`
	Unit      string    `db:"unit"`
	Change    float64   `db:"change"`
	Region    string    `db:"region"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *marketPricesRepo) LatestQuotes(ctx context.Context, region string) ([]priceengine.Quote, error) {
	query := `
SELECT crop, price, unit, COALESCE(change, 0) AS change, region, updated_at
FROM public.market_prices
ORDER BY updated_at DESC, crop ASC`
	args := []any{}
	if region != catalog.AllRegions {
		query = `
SELECT crop, price, unit, COALESCE(change, 0) AS change, region, updated_at
FROM public.market_prices
WHERE region = $1
ORDER BY updated_at DESC, crop ASC`
		args = append(args, region)
	}

	var rows []marketPriceRow
	if err := r.conn.QueryRowsCtx(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("marketPricesRepo.LatestQuotes query: %w", err)
	}

	quotes := make([]priceengine.Quote, 0, len(rows))
	for _, row := range rows {
		quotes = append(quotes, priceengine.Quote{
			Crop:      row.Crop,
			Price:     row.Price,
			Unit:      row.Unit,
			Change:    row.Change,
			Region:    row.Region,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return quotes, nil
}

func (r *marketPricesRepo) RecentPrices(ctx context.Context, limit int) (map[string]float64, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
SELECT crop, price, unit, COALESCE(change, 0) AS change, region, updated_at
FROM public.market_prices
ORDER BY updated_at DESC
LIMIT $1`

	var rows []marketPriceRow
	if err := r.conn.QueryRowsCtx(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("marketPricesRepo.RecentPrices query: %w", err)
	}

	prices := make(map[string]float64, len(rows))
	for _, row := range rows {
		key := priceengine.PriceKey(row.Crop, row.Region)
		// Rows arrive newest first, so the first hit per key wins.
		if _, seen := prices[key]; !seen {
			prices[key] = row.Price
		}
	}
	return prices, nil
}

func (r *marketPricesRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	query := `DELETE FROM public.market_prices WHERE updated_at < $1`
	if _, err := r.conn.ExecCtx(ctx, query, cutoff); err != nil {
		return fmt.Errorf("marketPricesRepo.DeleteOlderThan exec: %w", err)
	}
	return nil
}

func (r *marketPricesRepo) InsertQuotes(ctx context.Context, quotes []priceengine.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString("INSERT INTO public.market_prices (id, crop, price, unit, change, region, updated_at) VALUES ")
	for i, q := range quotes {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 7
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args, uuid.NewString(), q.Crop, q.Price, q.Unit, q.Change, q.Region, q.UpdatedAt)
	}

	if _, err := r.conn.ExecCtx(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("marketPricesRepo.InsertQuotes exec: %w", err)
	}
	return nil
}
