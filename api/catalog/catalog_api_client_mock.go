package catalog

import (
	"log"

	"vs-server/config"
	"vs-server/models"
	"vs-server/models/venue"
	"vs-server/util"
)

// CatalogApiClientMock serves fixture data from resources/ instead of
// calling the real catalog. Used outside prod.
type CatalogApiClientMock struct {
}

// NewCatalogApiClientMock creates a new instance of CatalogApiClientMock.
func NewCatalogApiClientMock() *CatalogApiClientMock {
	return &CatalogApiClientMock{}
}

// GetVenuesNearby returns the fixture catalog response regardless of
// the coordinate.
func (c *CatalogApiClientMock) GetVenuesNearby(lat, lon float64) (*models.CatalogVenuesResponse, error) {
	response, err := util.ReadCatalogVenuesResponseFromJSON(
		config.GetResourcePath(config.CATALOG_VENUES_RESPONSE_RESOURCE))
	if err != nil {
		log.Printf("[CatalogApiClientMock] could not read catalog venues fixture: %v", err)
		return nil, err
	}
	return response, nil
}

// GetVenue returns the single-venue fixture regardless of the id.
func (c *CatalogApiClientMock) GetVenue(venueID string) (*venue.Venue, error) {
	response, err := util.ReadVenueFromJSON(
		config.GetResourcePath(config.VENUE_STATIC_RESOURCE))
	if err != nil {
		log.Printf("[CatalogApiClientMock] could not read venue fixture: %v", err)
		return nil, err
	}
	return response, nil
}

// SetAPIKey is a no-op for the mock.
func (c *CatalogApiClientMock) SetAPIKey(apiKey string) {}
