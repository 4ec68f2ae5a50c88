package model

import (
	"github.com/goccy/go-json"
)

// Location represents a place known to the content API
type Location struct {
	LocationID  string   `json:"location_id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Rating      *float64 `json:"rating,omitempty"`
	NumReviews  *int     `json:"num_reviews,omitempty"`
	Address     *Address `json:"address_obj,omitempty"`
	Photos      []Photo  `json:"photos,omitempty"`
	Awards      []Award  `json:"awards,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	PriceLevel  string   `json:"price_level,omitempty"`
	WebURL      string   `json:"web_url,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Address holds the optional address parts of a location
type Address struct {
	Street1       string `json:"street1,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
	AddressString string `json:"address_string,omitempty"`
}

// Award represents an award granted to a location
type Award struct {
	AwardType   string `json:"award_type"`
	Year        string `json:"year"`
	DisplayName string `json:"display_name"`
}

// Photo holds the named size variants of a single photo
type Photo struct {
	ID      string           `json:"id,omitempty"`
	Caption string           `json:"caption,omitempty"`
	Images  map[string]Image `json:"images,omitempty"`
}

// Image is one size variant of a photo
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// locationPayload mirrors the upstream wire shape, where numbers may arrive as strings
type locationPayload struct {
	LocationID  flexString `json:"location_id"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Rating      flexFloat  `json:"rating"`
	NumReviews  flexInt    `json:"num_reviews"`
	Address     *Address   `json:"address_obj"`
	Photos      []Photo    `json:"photos"`
	Awards      []Award    `json:"awards"`
	Latitude    flexFloat  `json:"latitude"`
	Longitude   flexFloat  `json:"longitude"`
	PriceLevel  string     `json:"price_level"`
	WebURL      string     `json:"web_url"`
	Description string     `json:"description"`
}

// UnmarshalJSON decodes a location, tolerating string-encoded numbers and absent fields
func (l *Location) UnmarshalJSON(data []byte) error {
	var p locationPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*l = Location{
		LocationID:  string(p.LocationID),
		Name:        p.Name,
		Category:    p.Category,
		Rating:      p.Rating.value,
		NumReviews:  p.NumReviews.value,
		Address:     p.Address,
		Photos:      p.Photos,
		Awards:      p.Awards,
		Latitude:    p.Latitude.value,
		Longitude:   p.Longitude.value,
		PriceLevel:  p.PriceLevel,
		WebURL:      p.WebURL,
		Description: p.Description,
	}
	return nil
}

type photoPayload struct {
	ID      flexString       `json:"id"`
	Caption string           `json:"caption"`
	Images  map[string]Image `json:"images"`
}

// UnmarshalJSON decodes a photo whose id may be numeric
func (p *Photo) UnmarshalJSON(data []byte) error {
	var payload photoPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	*p = Photo{ID: string(payload.ID), Caption: payload.Caption, Images: payload.Images}
	return nil
}
