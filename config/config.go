package config

import (
	"os"
	"path/filepath"

	"vs-server/models/schedule"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server
const SERVER_ADDRESS = ":8080"

// Venues Refresher config
const VENUES_REFRESHER_SCHEDULE_MINUTES = 60

// Venue Catalog API
const CATALOG_ENDPOINT_BASE_V1 = "https://catalog.internal/api/v1"
const CATALOG_API_KEY = "dev_catalog_key"

// ALL_VENUES_ALWAYS_OPEN forces every status query to report open.
// Development switch for demoing flows outside business hours; keep
// false in prod.
const ALL_VENUES_ALWAYS_OPEN = false

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CATALOG_VENUES_RESPONSE_RESOURCE = "catalog_venues_response.json"
const VENUE_STATIC_RESOURCE = "venue_static.json"
const VENUES_IDS_RESOURCE = "static_venues_ids.json"

// ScheduleConfig builds the evaluator configuration from the build
// settings. Threaded explicitly into status queries.
func ScheduleConfig() schedule.Config {
	return schedule.Config{AllVenuesAlwaysOpen: ALL_VENUES_ALWAYS_OPEN}
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
