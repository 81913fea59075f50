package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Vibe aggregation config
const VIBE_COOLDOWN_WINDOW = 30 * time.Minute
const VIBE_DECAY_WINDOW = 3 * time.Hour
const VIBE_SCORE_MIN = 1
const VIBE_SCORE_MAX = 5

// Feed ranking config
const FEED_RECENCY_FULL_SCORE_HOURS = 6.0
const FEED_RECENCY_WEIGHT = 0.7
const FEED_VIBE_WEIGHT = 0.3
const FEED_VIBE_BOOST = 50.0
const FEED_DEFAULT_VIBE_LEVEL = 50
const FEED_FRIEND_PRESENCE_MIN = 3
const FEED_FRIEND_PRESENCE_PRIORITY_BASE = 1_000_000

// Suggestions config
const SUGGESTIONS_CACHE_TTL = 5 * time.Minute
const SUGGESTIONS_MAX = 20
const SUGGESTIONS_PROVIDER_TIMEOUT = 5 * time.Second

// Presence refresher config
const PRESENCE_REFRESHER_SCHEDULE_SECONDS = 5

// External provider endpoints
const IDENTITY_ENDPOINT_BASE_V1 = "http://identity:8081/api/v1"
const LOCATION_ENDPOINT_BASE_V1 = "http://location:8082/api/v1"
const CONTACTS_ENDPOINT_BASE_V1 = "http://contacts-sync:8083/api/v1"
const SOCIAL_ENDPOINT_BASE_V1 = "http://social-graph:8084/api/v1"
const CONTENT_ENDPOINT_BASE_V1 = "http://content:8085/api/v1"

// Server config
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CONTENT_ITEMS_RESOURCE = "content_items.json"
const FRIEND_PRESENCE_RESOURCE = "friend_presence.json"
const CONTACT_CANDIDATES_RESOURCE = "contact_candidates.json"
const SOCIAL_CANDIDATES_RESOURCE = "social_candidates.json"

// LoadEnv loads a .env file if one is present. Missing files are fine;
// deployments that run on the constants above skip it entirely.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}
}

// Env returns the value of an environment variable or the given fallback.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
