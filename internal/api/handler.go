package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/format"
	"github.com/AMRENE5435/marrakech.reviews/internal/model"
	"github.com/AMRENE5435/marrakech.reviews/internal/service"
	"github.com/AMRENE5435/marrakech.reviews/internal/validation"
)

var errInvalidLimit = errors.New("invalid limit parameter")

// Handler handles HTTP requests
type Handler struct {
	service   service.ServiceInterface
	validator *validation.Validator
	logger    *zap.Logger
	now       func() time.Time
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface, validator *validation.Validator, logger *zap.Logger) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// Search handles GET /api/v1/search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := model.SearchRequest{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Limit:    limit,
	}
	if err := h.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	locations, err := h.service.Search(r.Context(), req.Query, req.Category, req.Limit)
	if err != nil {
		h.writeServiceError(w, r, "Error searching locations", err)
		return
	}

	h.writeJSON(w, r, model.SearchResponse{
		Results: format.NewLocationViews(locations),
		Total:   len(locations),
		MoreURL: format.MoreResultsURL(req.Query, len(locations), format.InlineResultLimit),
	})
}

// GetLocation handles GET /api/v1/locations/{id}
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	req, ok := h.locationRequest(w, r)
	if !ok {
		return
	}

	location, err := h.service.LocationDetails(r.Context(), req.LocationID, req.Lang)
	if err != nil {
		h.writeServiceError(w, r, "Error getting location", err)
		return
	}

	h.writeJSON(w, r, format.NewLocationView(*location))
}

// GetLocationPhotos handles GET /api/v1/locations/{id}/photos
func (h *Handler) GetLocationPhotos(w http.ResponseWriter, r *http.Request) {
	req, ok := h.locationRequest(w, r)
	if !ok {
		return
	}

	photos, err := h.service.LocationPhotos(r.Context(), req.LocationID, req.Lang)
	if err != nil {
		h.writeServiceError(w, r, "Error getting location photos", err)
		return
	}

	h.writeJSON(w, r, model.PhotosResponse{Results: photos})
}

// GetLocationReviews handles GET /api/v1/locations/{id}/reviews
func (h *Handler) GetLocationReviews(w http.ResponseWriter, r *http.Request) {
	req, ok := h.locationRequest(w, r)
	if !ok {
		return
	}

	reviews, err := h.service.LocationReviews(r.Context(), req.LocationID, req.Lang, req.Limit)
	if err != nil {
		h.writeServiceError(w, r, "Error getting location reviews", err)
		return
	}

	h.writeJSON(w, r, model.ReviewsResponse{Results: format.NewReviewViews(reviews, h.now())})
}

// Nearby handles GET /api/v1/nearby
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	req := model.NearbyRequest{
		LatLong:    q.Get("lat_long"),
		Category:   q.Get("category"),
		Radius:     q.Get("radius"),
		RadiusUnit: q.Get("radius_unit"),
		Limit:      limit,
	}
	if err := h.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	locations, err := h.service.Nearby(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "Error finding nearby locations", err)
		return
	}

	h.writeJSON(w, r, model.LocationsResponse{Results: format.NewLocationViews(locations)})
}

// GetCategory handles GET /api/v1/categories/{category}
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	req := model.CategoryRequest{Category: mux.Vars(r)["category"]}
	if err := h.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	locations, err := h.service.CategoryData(r.Context(), req.Category)
	if err != nil {
		h.writeServiceError(w, r, "Error getting category data", err)
		return
	}

	h.writeJSON(w, r, model.LocationsResponse{Results: format.NewLocationViews(locations)})
}

// GetHighlights handles GET /api/v1/highlights
func (h *Handler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	highlights := h.service.Highlights(r.Context())

	h.writeJSON(w, r, model.HighlightsResponse{
		Restaurants: format.NewLocationViews(highlights.Restaurants),
		Hotels:      format.NewLocationViews(highlights.Hotels),
		Attractions: format.NewLocationViews(highlights.Attractions),
	})
}

// GetFeaturedReview handles GET /api/v1/featured-review
func (h *Handler) GetFeaturedReview(w http.ResponseWriter, r *http.Request) {
	featured, err := h.service.FeaturedReview(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "Error getting featured review", err)
		return
	}

	if featured == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, r, model.FeaturedReviewResponse{
		Location: format.NewLocationView(featured.Location),
		Review:   format.NewReviewView(featured.Review, h.now()),
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// locationRequest reads and validates the location id, lang and limit
func (h *Handler) locationRequest(w http.ResponseWriter, r *http.Request) (model.LocationRequest, bool) {
	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return model.LocationRequest{}, false
	}

	req := model.LocationRequest{
		LocationID: mux.Vars(r)["id"],
		Lang:       r.URL.Query().Get("lang"),
		Limit:      limit,
	}
	if err := h.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return model.LocationRequest{}, false
	}
	return req, true
}

func parseLimit(r *http.Request) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, errInvalidLimit
	}
	return limit, nil
}
