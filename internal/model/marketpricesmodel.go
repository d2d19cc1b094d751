package model

import "github.com/zeromicro/go-zero/core/stores/sqlx"

var _ MarketPricesModel = (*customMarketPricesModel)(nil)

type (
	// MarketPricesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customMarketPricesModel.
	MarketPricesModel interface {
		marketPricesModel
	}

	customMarketPricesModel struct {
		*defaultMarketPricesModel
	}
)

// NewMarketPricesModel returns a model for the database table.
func NewMarketPricesModel(conn sqlx.SqlConn) MarketPricesModel {
	return &customMarketPricesModel{
		defaultMarketPricesModel: newMarketPricesModel(conn),
	}
}
