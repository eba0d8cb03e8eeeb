package services

import (
	"log"
	"time"

	"vs-server/api/catalog"
	"vs-server/dao/redis"
)

// Location holds latitude and longitude for refresh jobs.
type Location struct {
	Lat float64
	Lng float64
}

// defaultLocations is the constant list of coordinates to refresh.
var defaultLocations = []Location{
	{
		// Downtown LA
		Lat: 34.044556,
		Lng: -118.250848,
	},
	{
		// Hollywood
		Lat: 34.101596,
		Lng: -118.331551,
	},
	{
		// Venice
		Lat: 33.988734,
		Lng: -118.472015,
	},
	{
		// Las Vegas Strip
		Lat: 36.114647,
		Lng: -115.172813,
	},
}

// VenuesRefresherService periodically pulls the venue catalog and
// upserts it into the Redis store, so status queries always evaluate
// reasonably fresh hours data.
type VenuesRefresherService struct {
	venueDao   *redis.RedisVenueDAO
	catalogAPI catalog.CatalogAPI
}

// NewVenuesRefresherService constructs a new refresher with dependencies.
func NewVenuesRefresherService(
	venueDao *redis.RedisVenueDAO,
	catalogAPI catalog.CatalogAPI,
) *VenuesRefresherService {
	return &VenuesRefresherService{
		venueDao:   venueDao,
		catalogAPI: catalogAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (vr *VenuesRefresherService) StartPeriodicJob(interval time.Duration) {
	go vr.startPeriodicJob(interval)
}

func (vr *VenuesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[VenuesRefresherService] Running periodic venues refresher job.")
		if err := vr.RefreshVenuesData(); err != nil {
			log.Printf("[VenuesRefresherService] RefreshVenuesData returned error: %v", err)
		} else {
			log.Println("[VenuesRefresherService] RefreshVenuesData completed successfully.")
		}
	}
}

// RefreshVenuesData fetches the catalog for every configured location,
// dedupes and upserts the venues. Per-location failures are logged
// and skipped; the refresh itself keeps going.
func (vr *VenuesRefresherService) RefreshVenuesData() error {
	seenIDs := make(map[string]struct{})
	upserted := 0

	log.Printf("[VenuesRefresherService] Refreshing %d locations", len(defaultLocations))
	for _, loc := range defaultLocations {
		resp, err := vr.catalogAPI.GetVenuesNearby(loc.Lat, loc.Lng)
		if err != nil {
			log.Printf("[VenuesRefresherService] Failed to fetch catalog for %v,%v: %v", loc.Lat, loc.Lng, err)
			continue
		}

		for _, v := range resp.Venues {
			if v.VenueID == "" {
				log.Printf("[VenuesRefresherService] Skipping venue without id: %s", v.VenueName)
				continue
			}
			if _, seen := seenIDs[v.VenueID]; seen {
				continue
			}
			seenIDs[v.VenueID] = struct{}{}

			if err := vr.venueDao.UpsertVenue(v); err != nil {
				log.Printf("[VenuesRefresherService] Failed to upsert venue %s: %v", v.VenueID, err)
				continue
			}
			upserted++
		}
	}

	log.Printf("[VenuesRefresherService] Upserted %d venues", upserted)
	return nil
}
