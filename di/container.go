package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"vs-server/api"
	"vs-server/api/content"
	"vs-server/api/identity"
	"vs-server/api/location"
	"vs-server/api/suggestions"
	"vs-server/config"
	"vs-server/dao/redis"
	"vs-server/db"
	"vs-server/server"
	"vs-server/server/handlers"
	services "vs-server/service"
	"vs-server/util"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient              db.RedisClient
	RedisVibeDao             *redis.RedisVibeDAO
	RedisPresenceDao         *redis.RedisPresenceDAO
	IdentityAPI              identity.IdentityAPI
	LocationAPI              location.LocationAPI
	ContentAPI               content.ContentAPI
	SuggestionProviders      []suggestions.SuggestionProvider
	VibeService              *services.VibeService
	FeedService              *services.FeedService
	ClusterService           *services.ClusterService
	SuggestionService        *services.SuggestionService
	PresenceRefresherService *services.PresenceRefresherService
	VibeHandler              *handlers.VibeHandler
	FeedHandler              *handlers.FeedHandler
	FriendsHandler           *handlers.FriendsHandler
	SuggestionHandler        *handlers.SuggestionHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	VibeSenseHttpServer      *server.VibeSenseHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	// Initialize Redis Client internals
	ctx := context.Background()

	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})

		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize DAOs
	redisVibeDao := redis.NewRedisVibeDAO(redisClient)
	redisPresenceDao := redis.NewRedisPresenceDAO(redisClient)

	// Initialize provider APIs - mocks outside prod, loaded from fixtures
	var identityAPI identity.IdentityAPI
	var locationAPI location.LocationAPI
	var contentAPI content.ContentAPI
	var providers []suggestions.SuggestionProvider

	if env != "prod" {
		log.Printf("Using mock provider apis")
		identityAPI = identity.NewIdentityApiClientMock()
		locationAPI = newLocationMockFromFixtures()
		contentAPI = newContentMockFromFixtures()
		providers = newProviderMocksFromFixtures()
	} else {
		log.Printf("Using prod provider apis")
		identityAPI = identity.NewIdentityApiClient(api.NewHTTPClient(config.IDENTITY_ENDPOINT_BASE_V1))
		locationAPI = location.NewLocationApiClient(api.NewHTTPClient(config.LOCATION_ENDPOINT_BASE_V1))
		contentAPI = content.NewContentApiClient(api.NewHTTPClient(config.CONTENT_ENDPOINT_BASE_V1))
		providers = []suggestions.SuggestionProvider{
			suggestions.NewContactsProviderClient(api.NewHTTPClient(config.CONTACTS_ENDPOINT_BASE_V1)),
			suggestions.NewSocialProviderClient(api.NewHTTPClient(config.SOCIAL_ENDPOINT_BASE_V1)),
		}
	}

	// Initialize service layer
	presenceRefresherService := services.NewPresenceRefresherService(locationAPI, redisPresenceDao)
	vibeService := services.NewVibeService(redisVibeDao, identityAPI)
	feedService := services.NewFeedService(vibeService, identityAPI, presenceRefresherService)
	clusterService := services.NewClusterService()
	suggestionService := services.NewSuggestionService(
		providers, config.SUGGESTIONS_CACHE_TTL, config.SUGGESTIONS_MAX, true)

	// Initialize handlers
	vibeHandler := handlers.NewVibeHandler(vibeService)
	feedHandler := handlers.NewFeedHandler(feedService, contentAPI)
	friendsHandler := handlers.NewFriendsHandler(clusterService, presenceRefresherService, redisPresenceDao)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(vibeHandler, feedHandler, friendsHandler, suggestionHandler, muxRouter)

	// initialize vibe sense server
	vibeSenseHttpServer := server.NewVibeSenseHttpServer(router, muxRouter)

	return &Container{
		RedisClient:              redisClient,
		RedisVibeDao:             redisVibeDao,
		RedisPresenceDao:         redisPresenceDao,
		IdentityAPI:              identityAPI,
		LocationAPI:              locationAPI,
		ContentAPI:               contentAPI,
		SuggestionProviders:      providers,
		VibeService:              vibeService,
		FeedService:              feedService,
		ClusterService:           clusterService,
		SuggestionService:        suggestionService,
		PresenceRefresherService: presenceRefresherService,
		VibeHandler:              vibeHandler,
		FeedHandler:              feedHandler,
		FriendsHandler:           friendsHandler,
		SuggestionHandler:        suggestionHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		VibeSenseHttpServer:      vibeSenseHttpServer,
	}
}

func newLocationMockFromFixtures() *location.LocationApiClientMock {
	mock := location.NewLocationApiClientMock()
	friends, err := util.ReadFriendPresenceFromJSON(config.GetResourcePath(config.FRIEND_PRESENCE_RESOURCE))
	if err != nil {
		log.Printf("No friend presence fixture loaded: %v", err)
		return mock
	}
	mock.SetVisibleFriends(friends)
	return mock
}

func newContentMockFromFixtures() *content.ContentApiClientMock {
	mock := content.NewContentApiClientMock()
	items, err := util.ReadContentItemsFromJSON(config.GetResourcePath(config.CONTENT_ITEMS_RESOURCE))
	if err != nil {
		log.Printf("No content items fixture loaded: %v", err)
		return mock
	}
	mock.SetRecentContent(items)
	return mock
}

func newProviderMocksFromFixtures() []suggestions.SuggestionProvider {
	var providers []suggestions.SuggestionProvider

	fixtures := []struct {
		name     string
		resource string
	}{
		{"contacts", config.CONTACT_CANDIDATES_RESOURCE},
		{"social", config.SOCIAL_CANDIDATES_RESOURCE},
	}

	for _, f := range fixtures {
		candidates, err := util.ReadRawCandidatesFromJSON(config.GetResourcePath(f.resource))
		if err != nil {
			log.Printf("No %s candidates fixture loaded: %v", f.name, err)
		}
		providers = append(providers, suggestions.NewSuggestionProviderMock(f.name, candidates))
	}
	return providers
}
