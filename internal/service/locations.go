package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AMRENE5435/marrakech.reviews/internal/format"
	"github.com/AMRENE5435/marrakech.reviews/internal/model"
	"github.com/AMRENE5435/marrakech.reviews/internal/tripadvisor"
)

// categoryAll is the search box value meaning no category filter
const categoryAll = "all"

// Search runs a free-text search. When a category is given the results are
// restricted to it; results without a category are assumed to match.
func (s *Service) Search(ctx context.Context, query, category string, limit int) ([]model.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Location{}, nil
	}
	if category == categoryAll {
		category = ""
	}

	env, err := s.api.SearchLocations(ctx, tripadvisor.SearchParams{
		Query:    query,
		Category: category,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}

	results := env.Items()
	if category == "" {
		return results, nil
	}

	for i := range results {
		if results[i].Category.IsZero() {
			results[i].Category = model.CategoryCode(category)
		}
	}
	return format.FilterByCategory(results, category), nil
}

// LocationDetails retrieves the details of a location
func (s *Service) LocationDetails(ctx context.Context, locationID, lang string) (*model.Location, error) {
	location, err := s.api.GetLocationDetails(ctx, locationID, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to get location details: %w", err)
	}
	return location, nil
}

// LocationPhotos retrieves the photos of a location
func (s *Service) LocationPhotos(ctx context.Context, locationID, lang string) ([]model.Photo, error) {
	env, err := s.api.GetLocationPhotos(ctx, locationID, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to get location photos: %w", err)
	}
	return env.Items(), nil
}

// LocationReviews retrieves the most recent reviews of a location
func (s *Service) LocationReviews(ctx context.Context, locationID, lang string, limit int) ([]model.Review, error) {
	env, err := s.api.GetLocationReviews(ctx, locationID, lang, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get location reviews: %w", err)
	}
	return env.Items(), nil
}

// Nearby finds locations around a point, Marrakech's centre by default
func (s *Service) Nearby(ctx context.Context, req model.NearbyRequest) ([]model.Location, error) {
	env, err := s.api.GetNearbyLocations(ctx, tripadvisor.NearbyParams{
		LatLong:    req.LatLong,
		Category:   req.Category,
		Radius:     req.Radius,
		RadiusUnit: req.RadiusUnit,
		Limit:      req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby locations: %w", err)
	}
	return env.Items(), nil
}

// CategoryData lists the locations of one homepage category
func (s *Service) CategoryData(ctx context.Context, category string) ([]model.Location, error) {
	var (
		env *model.Envelope[model.Location]
		err error
	)
	switch category {
	case "restaurants":
		env, err = s.api.SearchRestaurants(ctx, "", 0)
	case "hotels":
		env, err = s.api.SearchHotels(ctx, "", 0)
	case "attractions":
		env, err = s.api.SearchAttractions(ctx, "", 0)
	default:
		env, err = s.api.SearchLocations(ctx, tripadvisor.SearchParams{Query: "Marrakech " + category})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s data: %w", category, err)
	}
	return env.Items(), nil
}
