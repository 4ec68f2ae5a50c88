package service

import (
	"context"

	"github.com/AMRENE5435/marrakech.reviews/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	Search(ctx context.Context, query, category string, limit int) ([]model.Location, error)
	LocationDetails(ctx context.Context, locationID, lang string) (*model.Location, error)
	LocationPhotos(ctx context.Context, locationID, lang string) ([]model.Photo, error)
	LocationReviews(ctx context.Context, locationID, lang string, limit int) ([]model.Review, error)
	Nearby(ctx context.Context, req model.NearbyRequest) ([]model.Location, error)
	CategoryData(ctx context.Context, category string) ([]model.Location, error)
	Highlights(ctx context.Context) model.Highlights
	FeaturedReview(ctx context.Context) (*model.FeaturedReview, error)
}
