package model

import "github.com/zeromicro/go-zero/core/stores/sqlx"

var _ CommunityPostsModel = (*customCommunityPostsModel)(nil)

type (
	// CommunityPostsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customCommunityPostsModel.
	CommunityPostsModel interface {
		communityPostsModel
	}

	customCommunityPostsModel struct {
		*defaultCommunityPostsModel
	}
)

// NewCommunityPostsModel returns a model for the database table.
func NewCommunityPostsModel(conn sqlx.SqlConn) CommunityPostsModel {
	return &customCommunityPostsModel{
		defaultCommunityPostsModel: newCommunityPostsModel(conn),
	}
}
