package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"agrilink-api/pkg/weather"
)

// WeatherRepo persists per-location forecasts. It satisfies weather.Store.
type WeatherRepo interface {
	LatestForLocation(ctx context.Context, location string) (weather.Forecast, bool, error)
	Insert(ctx context.Context, forecast weather.Forecast) error
}

type weatherRepo struct {
	conn sqlx.SqlConn
}

func newWeatherRepo(deps Dependencies) WeatherRepo {
	return &weatherRepo{
		conn: deps.DBConn,
	}
}

type weatherRow struct {
	Location     string    `db:"location"`
	Condition    string    `db:"condition"`
	Temperature  int64     `db:"temperature"`
	Humidity     int64     `db:"humidity"`
	ForecastDate time.Time `db:"forecast_date"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r *weatherRepo) LatestForLocation(ctx context.Context, location string) (weather.Forecast, bool, error) {
	query := `
SELECT location, condition, temperature, humidity, forecast_date, updated_at
FROM public.weather_forecasts
WHERE location = $1
ORDER BY updated_at DESC
LIMIT 1`

	var row weatherRow
	err := r.conn.QueryRowCtx(ctx, &row, query, location)
	switch err {
	case nil:
		return weather.Forecast{
			Location:     row.Location,
			Condition:    row.Condition,
			TemperatureC: int(row.Temperature),
			Humidity:     int(row.Humidity),
			ForecastDate: row.ForecastDate,
			UpdatedAt:    row.UpdatedAt,
		}, true, nil
	case sqlc.ErrNotFound:
		return weather.Forecast{}, false, nil
	default:
		return weather.Forecast{}, false, fmt.Errorf("weatherRepo.LatestForLocation query: %w", err)
	}
}

func (r *weatherRepo) Insert(ctx context.Context, forecast weather.Forecast) error {
	query := `
INSERT INTO public.weather_forecasts (id, location, condition, temperature, humidity, forecast_date)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.conn.ExecCtx(ctx, query,
		uuid.NewString(), forecast.Location, forecast.Condition,
		int64(forecast.TemperatureC), int64(forecast.Humidity), forecast.ForecastDate)
	if err != nil {
		return fmt.Errorf("weatherRepo.Insert exec: %w", err)
	}
	return nil
}
