package model

// SearchRequest represents the request parameters for a location search
type SearchRequest struct {
	Query    string `validate:"required,valid_query,max=200"`
	Category string `validate:"omitempty,max=50"`
	Limit    int    `validate:"min=0,max=50"`
}

// NearbyRequest represents the request parameters for a nearby search
type NearbyRequest struct {
	LatLong    string `validate:"omitempty,lat_long"`
	Category   string `validate:"omitempty,max=50"`
	Radius     string `validate:"omitempty,numeric"`
	RadiusUnit string `validate:"omitempty,oneof=km mi m"`
	Limit      int    `validate:"min=0,max=50"`
}

// Stars is a 0-5 rating decomposed into full, half and empty stars
type Stars struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// Coordinate represents geographic coordinates
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationView is a location enriched with display-ready values
type LocationView struct {
	LocationID  string     `json:"location_id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Rating      string     `json:"rating"`
	Stars       Stars      `json:"stars"`
	ReviewCount string     `json:"review_count"`
	Address     string     `json:"address"`
	Image       string     `json:"image"`
	Badges      []string   `json:"badges"`
	PriceLevel  string     `json:"price_level"`
	Coordinates Coordinate `json:"coordinates"`
	URL         string     `json:"url"`
}

// ReviewView is a review enriched with display-ready values
type ReviewView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Rating    string `json:"rating"`
	Stars     Stars  `json:"stars"`
	Published string `json:"published"`
	Author    string `json:"author"`
	From      string `json:"from"`
}

// SearchResponse represents the response for a location search
type SearchResponse struct {
	Results []LocationView `json:"results"`
	Total   int            `json:"total"`
	MoreURL string         `json:"more_url,omitempty"`
}

// LocationsResponse wraps a plain list of locations
type LocationsResponse struct {
	Results []LocationView `json:"results"`
}

// ReviewsResponse wraps the reviews of a location
type ReviewsResponse struct {
	Results []ReviewView `json:"results"`
}

// PhotosResponse wraps the photos of a location
type PhotosResponse struct {
	Results []Photo `json:"results"`
}

// HighlightsResponse is the homepage highlights view
type HighlightsResponse struct {
	Restaurants []LocationView `json:"restaurants"`
	Hotels      []LocationView `json:"hotels"`
	Attractions []LocationView `json:"attractions"`
}

// FeaturedReviewResponse is the "review of the day" view
type FeaturedReviewResponse struct {
	Location LocationView `json:"location"`
	Review   ReviewView   `json:"review"`
}

// LocationRequest represents the path and query parameters of a per-location request
type LocationRequest struct {
	LocationID string `validate:"required,numeric,max=20"`
	Lang       string `validate:"omitempty,max=10"`
	Limit      int    `validate:"min=0,max=50"`
}

// CategoryRequest represents the parameters of a category listing
type CategoryRequest struct {
	Category string `validate:"required,alphanum,max=50"`
}
