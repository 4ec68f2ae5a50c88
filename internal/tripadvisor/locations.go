package tripadvisor

import (
	"context"
	"net/url"

	"github.com/AMRENE5435/marrakech.reviews/internal/model"
)

const (
	defaultLanguage     = "en"
	defaultQuery        = "Marrakech"
	defaultCategory     = "attractions"
	defaultSearchLimit  = 20
	defaultReviewsLimit = 10
	defaultLatLong      = "31.6295,-7.9811"
	defaultNearbyRadius = "25"
	defaultNearbyUnit   = "km"

	categoryRestaurants = "restaurants"
	categoryHotels      = "hotels"
	categoryAttractions = "attractions"

	defaultRestaurantsQuery = "Marrakech restaurants"
	defaultHotelsQuery      = "Marrakech hotels"
	defaultAttractionsQuery = "Marrakech attractions"
)

// SearchParams are the inputs of a location search. Zero values take defaults.
type SearchParams struct {
	Query    string
	Category string
	Language string
	Limit    int
}

// NearbyParams are the inputs of a nearby search. Zero values take defaults
// centred on Marrakech.
type NearbyParams struct {
	LatLong    string
	Category   string
	Radius     string
	RadiusUnit string
	Language   string
	Limit      int
}

// SearchLocations handles GET /location/search
func (c *Client) SearchLocations(ctx context.Context, params SearchParams) (*model.Envelope[model.Location], error) {
	req := newAPIRequest("/location/search", "/location/search").
		addParam("searchQuery", orDefault(params.Query, defaultQuery)).
		addParam("category", orDefault(params.Category, defaultCategory)).
		addParam("language", orDefault(params.Language, c.language)).
		addIntParam("limit", intOrDefault(params.Limit, defaultSearchLimit))

	return getEnvelope[model.Location](ctx, c, req)
}

// GetLocationDetails handles GET /location/{id}/details
func (c *Client) GetLocationDetails(ctx context.Context, locationID, language string) (*model.Location, error) {
	if locationID == "" {
		return nil, ErrMissingLocationID
	}
	req := newAPIRequest("/location/{id}/details", "/location/"+url.PathEscape(locationID)+"/details").
		addParam("language", orDefault(language, c.language))

	return getJSON[model.Location](ctx, c, req)
}

// GetLocationPhotos handles GET /location/{id}/photos
func (c *Client) GetLocationPhotos(ctx context.Context, locationID, language string) (*model.Envelope[model.Photo], error) {
	if locationID == "" {
		return nil, ErrMissingLocationID
	}
	req := newAPIRequest("/location/{id}/photos", "/location/"+url.PathEscape(locationID)+"/photos").
		addParam("language", orDefault(language, c.language))

	return getEnvelope[model.Photo](ctx, c, req)
}

// GetLocationReviews handles GET /location/{id}/reviews
func (c *Client) GetLocationReviews(ctx context.Context, locationID, language string, limit int) (*model.Envelope[model.Review], error) {
	if locationID == "" {
		return nil, ErrMissingLocationID
	}
	req := newAPIRequest("/location/{id}/reviews", "/location/"+url.PathEscape(locationID)+"/reviews").
		addParam("language", orDefault(language, c.language)).
		addIntParam("limit", intOrDefault(limit, defaultReviewsLimit))

	return getEnvelope[model.Review](ctx, c, req)
}

// SearchRestaurants searches restaurants
func (c *Client) SearchRestaurants(ctx context.Context, query string, limit int) (*model.Envelope[model.Location], error) {
	return c.SearchLocations(ctx, SearchParams{Query: orDefault(query, defaultRestaurantsQuery), Category: categoryRestaurants, Limit: limit})
}

// SearchHotels searches hotels and riads
func (c *Client) SearchHotels(ctx context.Context, query string, limit int) (*model.Envelope[model.Location], error) {
	return c.SearchLocations(ctx, SearchParams{Query: orDefault(query, defaultHotelsQuery), Category: categoryHotels, Limit: limit})
}

// SearchAttractions searches attractions
func (c *Client) SearchAttractions(ctx context.Context, query string, limit int) (*model.Envelope[model.Location], error) {
	return c.SearchLocations(ctx, SearchParams{Query: orDefault(query, defaultAttractionsQuery), Category: categoryAttractions, Limit: limit})
}

// GetNearbyLocations handles GET /location/nearby_search
func (c *Client) GetNearbyLocations(ctx context.Context, params NearbyParams) (*model.Envelope[model.Location], error) {
	req := newAPIRequest("/location/nearby_search", "/location/nearby_search").
		addParam("latLong", orDefault(params.LatLong, defaultLatLong)).
		addParam("category", orDefault(params.Category, defaultCategory)).
		addParam("radius", orDefault(params.Radius, defaultNearbyRadius)).
		addParam("radiusUnit", orDefault(params.RadiusUnit, defaultNearbyUnit)).
		addParam("language", orDefault(params.Language, c.language)).
		addIntParam("limit", intOrDefault(params.Limit, defaultSearchLimit))

	return getEnvelope[model.Location](ctx, c, req)
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func intOrDefault(value, def int) int {
	if value <= 0 {
		return def
	}
	return value
}
