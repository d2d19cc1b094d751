package repo

import (
	"errors"

	rediscache "github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"agrilink-api/internal/cache"
	"agrilink-api/internal/model"
)

// Dependencies bundles the generated goctl models and shared infrastructure
// required by repository implementations.
type Dependencies struct {
	DBConn sqlx.SqlConn
	Cache  rediscache.Cache
	TTL    cache.TTLSet

	MarketPricesModel     model.MarketPricesModel
	WeatherForecastsModel model.WeatherForecastsModel
	CropListingsModel     model.CropListingsModel
	ConversationsModel    model.ConversationsModel
	MessagesModel         model.MessagesModel
	ProfilesModel         model.ProfilesModel
	CommunityPostsModel   model.CommunityPostsModel
}

// Set exposes strongly typed repositories to application logic.
type Set struct {
	MarketPrices MarketPricesRepo
	Weather      WeatherRepo
	Messaging    MessagingRepo
	Listings     ListingsRepo
	Community    CommunityRepo
}

// New constructs the repository set, validating required dependencies.
func New(deps Dependencies) (*Set, error) {
	if deps.DBConn == nil {
		return nil, errors.New("repo: missing DBConn dependency")
	}

	return &Set{
		MarketPrices: newMarketPricesRepo(deps),
		Weather:      newWeatherRepo(deps),
		Messaging:    newMessagingRepo(deps),
		Listings:     newListingsRepo(deps),
		Community:    newCommunityRepo(deps),
	}, nil
}
