package model

import "github.com/zeromicro/go-zero/core/stores/sqlx"

var _ CropListingsModel = (*customCropListingsModel)(nil)

type (
	// CropListingsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customCropListingsModel.
	CropListingsModel interface {
		cropListingsModel
	}

	customCropListingsModel struct {
		*defaultCropListingsModel
	}
)

// NewCropListingsModel returns a model for the database table.
func NewCropListingsModel(conn sqlx.SqlConn) CropListingsModel {
	return &customCropListingsModel{
		defaultCropListingsModel: newCropListingsModel(conn),
	}
}
