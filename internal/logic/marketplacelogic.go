package logic

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"agrilink-api/internal/model"
	"agrilink-api/internal/svc"
	"agrilink-api/internal/types"
)

type MarketplaceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMarketplaceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MarketplaceLogic {
	return &MarketplaceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MarketplaceLogic) ListListings(req *types.ListListingsReq) (*types.ListListingsResp, error) {
	var (
		rows []model.CropListings
		err  error
	)
	if req.UserId != "" {
		rows, err = l.svcCtx.Repos.Listings.ByUser(l.ctx, req.UserId)
	} else {
		rows, err = l.svcCtx.Repos.Listings.Available(l.ctx, req.Location)
	}
	if err != nil {
		return nil, err
	}

	resp := &types.ListListingsResp{Listings: make([]types.Listing, 0, len(rows))}
	for i := range rows {
		resp.Listings = append(resp.Listings, listingView(&rows[i]))
	}
	return resp, nil
}

func (l *MarketplaceLogic) CreateListing(req *types.CreateListingReq) (*types.Listing, error) {
	if req.UserId == "" || req.CropName == "" || req.Location == "" {
		return nil, errors.New("userId, cropName and location are required")
	}
	if req.Quantity <= 0 || req.PricePerUnit <= 0 {
		return nil, errors.New("quantity and pricePerUnit must be positive")
	}

	unit := req.Unit
	if unit == "" {
		// Fall back to the crop's primary selling unit.
		unit = l.svcCtx.Catalog.PrimaryUnit(req.CropName)
	}

	listing := &model.CropListings{
		Id:           uuid.NewString(),
		UserId:       req.UserId,
		CropName:     req.CropName,
		Description:  nullString(req.Description),
		Quantity:     req.Quantity,
		Unit:         unit,
		PricePerUnit: req.PricePerUnit,
		Location:     req.Location,
		ContactPhone: nullString(req.ContactPhone),
		ImageUrl:     nullString(req.ImageUrl),
		IsAvailable:  sql.NullBool{Bool: true, Valid: true},
	}
	if err := l.svcCtx.Repos.Listings.Create(l.ctx, listing); err != nil {
		return nil, err
	}
	l.svcCtx.ChangeFeed.Changed(l.ctx, "crop_listings")

	view := listingView(listing)
	return &view, nil
}

func (l *MarketplaceLogic) GetListing(req *types.ListingIdReq) (*types.Listing, error) {
	listing, err := l.svcCtx.Repos.Listings.FindOne(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}
	view := listingView(listing)
	return &view, nil
}

func (l *MarketplaceLogic) MarkUnavailable(req *types.ListingIdReq) error {
	if err := l.svcCtx.Repos.Listings.SetAvailability(l.ctx, req.Id, false); err != nil {
		return err
	}
	l.svcCtx.ChangeFeed.Changed(l.ctx, "crop_listings")
	return nil
}

func listingView(row *model.CropListings) types.Listing {
	view := types.Listing{
		Id:           row.Id,
		UserId:       row.UserId,
		CropName:     row.CropName,
		Quantity:     row.Quantity,
		Unit:         row.Unit,
		PricePerUnit: row.PricePerUnit,
		Location:     row.Location,
		IsAvailable:  row.IsAvailable.Valid && row.IsAvailable.Bool,
		CreatedAt:    row.CreatedAt.UnixMilli(),
	}
	if row.Description.Valid {
		view.Description = row.Description.String
	}
	if row.ContactPhone.Valid {
		view.ContactPhone = row.ContactPhone.String
	}
	if row.ImageUrl.Valid {
		view.ImageUrl = row.ImageUrl.String
	}
	return view
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
