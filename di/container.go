package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"vs-server/api"
	"vs-server/api/catalog"
	"vs-server/config"
	"vs-server/dao/redis"
	"vs-server/db"
	"vs-server/server"
	"vs-server/server/handlers"
	services "vs-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisVenueDao          *redis.RedisVenueDAO
	CatalogAPI             catalog.CatalogAPI
	VenueService           *services.VenueService
	VenuesRefresherService *services.VenuesRefresherService
	VenueHandler           *handlers.VenueHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	VenueStatusHttpServer  *server.VenueStatusHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	var catalogAPI catalog.CatalogAPI
	if env != "prod" {
		catalogAPI = catalog.NewCatalogApiClientMock()
		log.Printf("Using mock venue catalog api")
	} else {
		log.Printf("Using prod venue catalog api")
		httpClient := api.NewHTTPClient(config.CATALOG_ENDPOINT_BASE_V1)
		catalogAPI = catalog.NewCatalogApiClient(httpClient)
		catalogAPI.SetAPIKey(config.CATALOG_API_KEY)
	}

	venueService := services.NewVenueService(redisVenueDao, config.ScheduleConfig())
	venuesRefresherService := services.NewVenuesRefresherService(redisVenueDao, catalogAPI)

	venueHandler := handlers.NewVenueHandler(venueService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, muxRouter)
	venueStatusHttpServer := server.NewVenueStatusHttpServer(router, muxRouter, config.SERVER_ADDRESS)

	return &Container{
		RedisClient:            redisClient,
		RedisVenueDao:          redisVenueDao,
		CatalogAPI:             catalogAPI,
		VenueService:           venueService,
		VenuesRefresherService: venuesRefresherService,
		VenueHandler:           venueHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		VenueStatusHttpServer:  venueStatusHttpServer,
	}
}
