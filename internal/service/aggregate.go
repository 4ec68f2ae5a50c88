package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AMRENE5435/marrakech.reviews/internal/metrics"
	"github.com/AMRENE5435/marrakech.reviews/internal/model"
	"github.com/AMRENE5435/marrakech.reviews/internal/tripadvisor"
)

const (
	highlightsRestaurantsQuery = "Marrakech best restaurants"
	highlightsHotelsQuery      = "Marrakech luxury riads hotels"
	highlightsAttractionsQuery = "Marrakech top attractions"

	featuredQuery         = "Marrakech popular places"
	featuredCategory      = "attractions"
	featuredSearchLimit   = 10
	featuredReviewsLimit  = 5
	featuredAggregateName = "featured review"
)

// Highlights returns up to six restaurants, hotels and attractions fetched
// concurrently. Any failure degrades the whole result to the empty shape.
func (s *Service) Highlights(ctx context.Context) model.Highlights {
	var restaurants, hotels, attractions []model.Location

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env, err := s.api.SearchRestaurants(gctx, highlightsRestaurantsQuery, model.HighlightsLimit)
		if err != nil {
			return err
		}
		restaurants = capLocations(env.Items(), model.HighlightsLimit)
		return nil
	})
	g.Go(func() error {
		env, err := s.api.SearchHotels(gctx, highlightsHotelsQuery, model.HighlightsLimit)
		if err != nil {
			return err
		}
		hotels = capLocations(env.Items(), model.HighlightsLimit)
		return nil
	})
	g.Go(func() error {
		env, err := s.api.SearchAttractions(gctx, highlightsAttractionsQuery, model.HighlightsLimit)
		if err != nil {
			return err
		}
		attractions = capLocations(env.Items(), model.HighlightsLimit)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("highlights degraded to empty", zap.Error(err))
		metrics.AggregationFallbacks.WithLabelValues("highlights").Inc()
		return model.EmptyHighlights()
	}

	return model.Highlights{
		Restaurants: restaurants,
		Hotels:      hotels,
		Attractions: attractions,
	}
}

// FeaturedReview picks a random popular location and one of its recent
// reviews. It returns nil without error when either list is empty.
func (s *Service) FeaturedReview(ctx context.Context) (*model.FeaturedReview, error) {
	locations, err := s.api.SearchLocations(ctx, tripadvisor.SearchParams{
		Query:    featuredQuery,
		Category: featuredCategory,
		Limit:    featuredSearchLimit,
	})
	if err != nil {
		return nil, &AggregationError{Aggregate: featuredAggregateName, Step: "search locations", Err: err}
	}
	if len(locations.Items()) == 0 {
		return nil, nil
	}

	location := locations.Items()[s.pick(len(locations.Items()))]

	reviews, err := s.api.GetLocationReviews(ctx, location.LocationID, "", featuredReviewsLimit)
	if err != nil {
		return nil, &AggregationError{Aggregate: featuredAggregateName, Step: "get location reviews", Err: err}
	}
	if len(reviews.Items()) == 0 {
		return nil, nil
	}

	review := reviews.Items()[s.pick(len(reviews.Items()))]
	return &model.FeaturedReview{Location: location, Review: review}, nil
}

func capLocations(locations []model.Location, limit int) []model.Location {
	if len(locations) > limit {
		return locations[:limit]
	}
	return locations
}
