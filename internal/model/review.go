package model

import (
	"github.com/goccy/go-json"
)

// Review belongs to exactly one location
type Review struct {
	ID            string   `json:"id"`
	LocationID    string   `json:"location_id"`
	Rating        *float64 `json:"rating,omitempty"`
	Title         string   `json:"title,omitempty"`
	Text          string   `json:"text"`
	PublishedDate string   `json:"published_date,omitempty"`
	URL           string   `json:"url,omitempty"`
	Author        *Author  `json:"user,omitempty"`
}

// Author describes who wrote a review
type Author struct {
	Username     string `json:"username,omitempty"`
	LocationName string `json:"location_name,omitempty"`
}

type reviewPayload struct {
	ID            flexString `json:"id"`
	LocationID    flexString `json:"location_id"`
	Rating        flexFloat  `json:"rating"`
	Title         string     `json:"title"`
	Text          string     `json:"text"`
	PublishedDate string     `json:"published_date"`
	URL           string     `json:"url"`
	User          *struct {
		Username     string `json:"username"`
		LocationName string `json:"location_name"`
		UserLocation *struct {
			Name string `json:"name"`
		} `json:"user_location"`
	} `json:"user"`
}

// UnmarshalJSON decodes a review from either the upstream shape or our own
func (r *Review) UnmarshalJSON(data []byte) error {
	var p reviewPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*r = Review{
		ID:            string(p.ID),
		LocationID:    string(p.LocationID),
		Rating:        p.Rating.value,
		Title:         p.Title,
		Text:          p.Text,
		PublishedDate: p.PublishedDate,
		URL:           p.URL,
	}
	if p.User != nil {
		author := &Author{
			Username:     p.User.Username,
			LocationName: p.User.LocationName,
		}
		if author.LocationName == "" && p.User.UserLocation != nil {
			author.LocationName = p.User.UserLocation.Name
		}
		r.Author = author
	}
	return nil
}
