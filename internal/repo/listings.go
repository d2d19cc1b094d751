package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"agrilink-api/internal/model"
)

// ListingsRepo backs the crop marketplace.
type ListingsRepo interface {
	// Available lists listings still marked available, newest first,
	// optionally filtered by location.
	Available(ctx context.Context, location string) ([]model.CropListings, error)
	// ByUser lists a seller's own listings regardless of availability.
	ByUser(ctx context.Context, userID string) ([]model.CropListings, error)
	// Create persists a new listing.
	Create(ctx context.Context, listing *model.CropListings) error
	// FindOne loads one listing by id.
	FindOne(ctx context.Context, id string) (*model.CropListings, error)
	// SetAvailability flips a listing's availability flag.
	SetAvailability(ctx context.Context, id string, available bool) error
}

type listingsRepo struct {
	conn     sqlx.SqlConn
	listings model.CropListingsModel
}

func newListingsRepo(deps Dependencies) ListingsRepo {
	return &listingsRepo{
		conn:     deps.DBConn,
		listings: deps.CropListingsModel,
	}
}

const listingColumns = `id, user_id, crop_name, description, quantity, unit, price_per_unit, location, contact_phone, image_url, is_available, created_at, updated_at`

func (r *listingsRepo) Available(ctx context.Context, location string) ([]model.CropListings, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM public.crop_listings
WHERE is_available IS TRUE
ORDER BY created_at DESC`, listingColumns)
	args := []any{}
	if location != "" {
		query = fmt.Sprintf(`
SELECT %s
FROM public.crop_listings
WHERE is_available IS TRUE AND location = $1
ORDER BY created_at DESC`, listingColumns)
		args = append(args, location)
	}

	var rows []model.CropListings
	if err := r.conn.QueryRowsCtx(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("listingsRepo.Available query: %w", err)
	}
	return rows, nil
}

func (r *listingsRepo) ByUser(ctx context.Context, userID string) ([]model.CropListings, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM public.crop_listings
WHERE user_id = $1
ORDER BY created_at DESC`, listingColumns)

	var rows []model.CropListings
	if err := r.conn.QueryRowsCtx(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("listingsRepo.ByUser query: %w", err)
	}
	return rows, nil
}

func (r *listingsRepo) Create(ctx context.Context, listing *model.CropListings) error {
	if _, err := r.listings.Insert(ctx, listing); err != nil {
		return fmt.Errorf("listingsRepo.Create insert: %w", err)
	}
	return nil
}

func (r *listingsRepo) FindOne(ctx context.Context, id string) (*model.CropListings, error) {
	return r.listings.FindOne(ctx, id)
}

func (r *listingsRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	query := `UPDATE public.crop_listings SET is_available = $2, updated_at = now() WHERE id = $1`
	if _, err := r.conn.ExecCtx(ctx, query, id, sql.NullBool{Bool: available, Valid: true}); err != nil {
		return fmt.Errorf("listingsRepo.SetAvailability exec: %w", err)
	}
	return nil
}
