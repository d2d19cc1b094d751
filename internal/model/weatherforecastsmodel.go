package model

import "github.com/zeromicro/go-zero/core/stores/sqlx"

var _ WeatherForecastsModel = (*customWeatherForecastsModel)(nil)

type (
	// WeatherForecastsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customWeatherForecastsModel.
	WeatherForecastsModel interface {
		weatherForecastsModel
	}

	customWeatherForecastsModel struct {
		*defaultWeatherForecastsModel
	}
)

// NewWeatherForecastsModel returns a model for the database table.
func NewWeatherForecastsModel(conn sqlx.SqlConn) WeatherForecastsModel {
	return &customWeatherForecastsModel{
		defaultWeatherForecastsModel: newWeatherForecastsModel(conn),
	}
}
