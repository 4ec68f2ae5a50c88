package format

import (
	"time"

	"github.com/AMRENE5435/marrakech.reviews/internal/model"
)

// ExcerptLength is the length reviews are cut to in card views
const ExcerptLength = 150

// NewLocationView derives every display value of a location card
func NewLocationView(loc model.Location) model.LocationView {
	return model.LocationView{
		LocationID:  loc.LocationID,
		Name:        loc.Name,
		Category:    CategoryDisplayName(loc.Category),
		Rating:      Rating(loc.Rating),
		Stars:       StarRating(loc.Rating),
		ReviewCount: ReviewCount(loc.NumReviews),
		Address:     Address(loc.Address),
		Image:       BestImage(loc.Photos, "large"),
		Badges:      LocationBadges(loc),
		PriceLevel:  PriceLevel(loc.PriceLevel),
		Coordinates: Coordinates(loc),
		URL:         TripAdvisorURL(loc.LocationID),
	}
}

// NewLocationViews maps NewLocationView over a list, never returning nil
func NewLocationViews(locations []model.Location) []model.LocationView {
	views := make([]model.LocationView, 0, len(locations))
	for _, loc := range locations {
		views = append(views, NewLocationView(loc))
	}
	return views
}

// NewReviewView derives the display values of a review relative to now
func NewReviewView(r model.Review, now time.Time) model.ReviewView {
	view := model.ReviewView{
		ID:        r.ID,
		Title:     r.Title,
		Excerpt:   TruncateText(r.Text, ExcerptLength),
		Rating:    Rating(r.Rating),
		Stars:     StarRating(r.Rating),
		Published: ReviewDate(r.PublishedDate, now),
		Author:    "Anonymous",
	}
	if r.Author != nil {
		if r.Author.Username != "" {
			view.Author = r.Author.Username
		}
		view.From = r.Author.LocationName
	}
	return view
}

// NewReviewViews maps NewReviewView over a list, never returning nil
func NewReviewViews(reviews []model.Review, now time.Time) []model.ReviewView {
	views := make([]model.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, NewReviewView(r, now))
	}
	return views
}
