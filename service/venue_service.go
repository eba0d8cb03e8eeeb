package services

import (
	"time"

	"vs-server/config"
	"vs-server/dao/redis"
	"vs-server/models/schedule"
	"vs-server/models/venue"
	"vs-server/util"
)

// VenueService answers venue and status queries over the Redis-backed
// catalog. The schedule.Config it carries is fixed at construction so
// every status answer is a pure function of (venue, instant, config).
type VenueService struct {
	venueDao *redis.RedisVenueDAO
	cfg      schedule.Config
}

// NewVenueService constructs a new VenueService with its dependencies.
func NewVenueService(venueDao *redis.RedisVenueDAO, cfg schedule.Config) *VenueService {
	return &VenueService{
		venueDao: venueDao,
		cfg:      cfg,
	}
}

// GetVenuesNearby lists venues within radius meters of a coordinate.
func (vs *VenueService) GetVenuesNearby(lat, lon, radius float64) ([]venue.Venue, error) {
	return vs.venueDao.GetNearbyVenues(lat, lon, radius)
}

// GetVenue fetches one venue; redis.ErrVenueNotFound for unknown IDs.
func (vs *VenueService) GetVenue(venueID string) (*venue.Venue, error) {
	return vs.venueDao.GetVenue(venueID)
}

// StatusOn evaluates a venue's status at an instant under the
// service's configuration.
func (vs *VenueService) StatusOn(v *venue.Venue, at time.Time) schedule.Status {
	return v.StatusOn(at, vs.cfg)
}

// GetVenueStatus fetches a venue and evaluates its status in one step.
func (vs *VenueService) GetVenueStatus(venueID string, at time.Time) (schedule.Status, error) {
	v, err := vs.venueDao.GetVenue(venueID)
	if err != nil {
		return schedule.Closed(), err
	}
	return v.StatusOn(at, vs.cfg), nil
}

// GetAllVenuesIds returns the static list of venue IDs tracked by the
// deployment.
func (vs *VenueService) GetAllVenuesIds() ([]string, error) {
	return util.ReadVenuesIds(config.GetResourcePath(config.VENUES_IDS_RESOURCE))
}
