package svc

import (
	"log"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	rediscache "github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/core/syncx"

	"agrilink-api/internal/cache"
	"agrilink-api/internal/config"
	"agrilink-api/internal/model"
	"agrilink-api/internal/notify"
	"agrilink-api/internal/repo"
	"agrilink-api/pkg/catalog"
	"agrilink-api/pkg/priceengine"
	pricefeedpkg "agrilink-api/pkg/pricefeed"
	_ "agrilink-api/pkg/pricefeed/alphavantage"
	_ "agrilink-api/pkg/pricefeed/nasdaqdatalink"
	"agrilink-api/pkg/weather"
)

type ServiceContext struct {
	Config config.Config

	Catalog *catalog.Catalog
	Feed    *pricefeedpkg.Chain
	Engine  *priceengine.Engine
	Weather *weather.Service

	Toast      *notify.Toast
	ChangeFeed *notify.ChangeFeed

	DBConn sqlx.SqlConn
	Redis  *redis.Redis
	Cache  rediscache.Cache
	TTL    cache.TTLSet
	Repos  *repo.Set

	MarketPricesModel     model.MarketPricesModel
	WeatherForecastsModel model.WeatherForecastsModel
	CropListingsModel     model.CropListingsModel
	ConversationsModel    model.ConversationsModel
	MessagesModel         model.MessagesModel
	ProfilesModel         model.ProfilesModel
	CommunityPostsModel   model.CommunityPostsModel
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{
		Config: c,
		TTL:    cache.NewTTLSet(c.TTL),
	}

	cat, err := catalog.Load(c.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load crop catalog: %v", err)
	}
	svc.Catalog = cat

	// Feed chain comes from the pricefeed config section; providers with no
	// API key are skipped so a bare config still boots.
	if c.Pricefeed.Value != nil {
		chain, err := c.Pricefeed.Value.BuildChain()
		if err != nil {
			log.Fatalf("failed to build price feed chain: %v", err)
		}
		svc.Feed = chain
	} else {
		svc.Feed = pricefeedpkg.NewChain()
	}

	if len(c.Redis.Host) > 0 {
		svc.Redis = redis.MustNewRedis(c.Redis)
		svc.Cache = rediscache.NewNode(svc.Redis, syncx.NewSingleFlight(), rediscache.NewStat("agrilink"), model.ErrNotFound)
	}
	svc.Toast = notify.NewToast(svc.Redis)
	svc.ChangeFeed = notify.NewChangeFeed(svc.Redis)

	// DB-backed services are wired only when a DSN is configured; the REST
	// handlers and cron loops require them, config-only tooling does not.
	if c.Postgres.DSN == "" {
		return svc
	}
	conn := sqlx.NewSqlConn("pgx", c.Postgres.DSN)
	db, err := conn.RawDB()
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	db.SetMaxOpenConns(c.Postgres.MaxOpen)
	db.SetMaxIdleConns(c.Postgres.MaxIdle)
	svc.DBConn = conn
	svc.MarketPricesModel = model.NewMarketPricesModel(conn)
	svc.WeatherForecastsModel = model.NewWeatherForecastsModel(conn)
	svc.CropListingsModel = model.NewCropListingsModel(conn)
	svc.ConversationsModel = model.NewConversationsModel(conn)
	svc.MessagesModel = model.NewMessagesModel(conn)
	svc.ProfilesModel = model.NewProfilesModel(conn)
	svc.CommunityPostsModel = model.NewCommunityPostsModel(conn)

	repos, err := repo.New(repo.Dependencies{
		DBConn:                conn,
		Cache:                 svc.Cache,
		TTL:                   svc.TTL,
		MarketPricesModel:     svc.MarketPricesModel,
		WeatherForecastsModel: svc.WeatherForecastsModel,
		CropListingsModel:     svc.CropListingsModel,
		ConversationsModel:    svc.ConversationsModel,
		MessagesModel:         svc.MessagesModel,
		ProfilesModel:         svc.ProfilesModel,
		CommunityPostsModel:   svc.CommunityPostsModel,
	})
	if err != nil {
		log.Fatalf("failed to build repositories: %v", err)
	}
	svc.Repos = repos

	engine, err := priceengine.New(priceengine.Config{
		Store:    repos.MarketPrices,
		Catalog:  cat,
		Feed:     svc.Feed,
		Notifier: svc.Toast,
	})
	if err != nil {
		log.Fatalf("failed to build price engine: %v", err)
	}
	svc.Engine = engine

	weatherSvc, err := weather.NewService(repos.Weather, nil, svc.Toast)
	if err != nil {
		log.Fatalf("failed to build weather service: %v", err)
	}
	svc.Weather = weatherSvc

	return svc
}
