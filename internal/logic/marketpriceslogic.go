package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"agrilink-api/internal/cache"
	"agrilink-api/internal/svc"
	"agrilink-api/internal/types"
	"agrilink-api/pkg/catalog"
)

type MarketPricesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMarketPricesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MarketPricesLogic {
	return &MarketPricesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// MarketPrices serves the price board for a region filter. A short Redis
// cache sits in front of the engine so a busy board does not hammer the
// staleness gate; the durable 24h gate lives inside the engine itself.
func (l *MarketPricesLogic) MarketPrices(req *types.MarketPricesReq) (*types.MarketPricesResp, error) {
	region := req.Region
	if region == "" {
		region = catalog.AllRegions
	}

	key := cache.MarketQuotesKey(region)
	if l.svcCtx.Cache != nil {
		var cached types.MarketPricesResp
		if err := l.svcCtx.Cache.GetCtx(l.ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	quotes, err := l.svcCtx.Engine.GetQuotes(l.ctx, region)
	if err != nil {
		return nil, err
	}

	resp := &types.MarketPricesResp{Prices: make([]types.MarketPrice, 0, len(quotes))}
	for _, q := range quotes {
		resp.Prices = append(resp.Prices, types.MarketPrice{
			Crop:      q.Crop,
			Price:     q.Price,
			Unit:      q.Unit,
			Change:    q.Change,
			Region:    q.Region,
			UpdatedAt: q.UpdatedAt.UnixMilli(),
		})
	}

	if l.svcCtx.Cache != nil {
		ttl := cache.MarketQuotesTTL(l.svcCtx.TTL)
		if err := l.svcCtx.Cache.SetWithExpireCtx(l.ctx, key, resp, ttl); err != nil {
			l.Errorf("set cache %s: %v", key, err)
		}
	}
	return resp, nil
}
