package catalog

import (
	"net/url"
	"strconv"

	"vs-server/api"
	"vs-server/models"
	"vs-server/models/venue"
)

// CatalogApiClient talks to the real venue catalog, embedding the
// common HTTPClient.
type CatalogApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewCatalogApiClient creates a new instance of CatalogApiClient.
func NewCatalogApiClient(httpClient *api.HTTPClient) *CatalogApiClient {
	return &CatalogApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the key sent with every catalog request.
func (c *CatalogApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// GetVenuesNearby retrieves the venues around a coordinate.
func (c *CatalogApiClient) GetVenuesNearby(lat, lon float64) (*models.CatalogVenuesResponse, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(lon, 'f', -1, 64))

	var response models.CatalogVenuesResponse
	if err := c.Request("GET", "/venues/nearby", query, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenue retrieves a venue given a venue id.
func (c *CatalogApiClient) GetVenue(venueID string) (*venue.Venue, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)

	var response venue.Venue
	if err := c.Request("GET", "/venues/"+venueID, query, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
