package logic

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"agrilink-api/internal/cache"
	"agrilink-api/internal/svc"
	"agrilink-api/internal/types"
)

type WeatherLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewWeatherLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WeatherLogic {
	return &WeatherLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *WeatherLogic) Weather(req *types.WeatherReq) (*types.WeatherResp, error) {
	if req.Location == "" {
		return nil, errors.New("location is required")
	}

	key := cache.WeatherKey(req.Location)
	if l.svcCtx.Cache != nil {
		var cached types.WeatherResp
		if err := l.svcCtx.Cache.GetCtx(l.ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	forecast, err := l.svcCtx.Weather.Current(l.ctx, req.Location)
	if err != nil {
		return nil, err
	}

	resp := &types.WeatherResp{
		Location:     forecast.Location,
		Condition:    forecast.Condition,
		Temperature:  forecast.TemperatureC,
		Humidity:     forecast.Humidity,
		ForecastDate: forecast.ForecastDate.Format("2006-01-02"),
		UpdatedAt:    forecast.UpdatedAt.UnixMilli(),
	}

	if l.svcCtx.Cache != nil {
		ttl := cache.WeatherTTL(l.svcCtx.TTL)
		if err := l.svcCtx.Cache.SetWithExpireCtx(l.ctx, key, resp, ttl); err != nil {
			l.Errorf("set cache %s: %v", key, err)
		}
	}
	return resp, nil
}
