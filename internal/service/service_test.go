package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/model"
	"github.com/AMRENE5435/marrakech.reviews/internal/tripadvisor"
)

// MockContentAPI implements tripadvisor.ContentAPI interface
type MockContentAPI struct {
	mock.Mock
}

func (m *MockContentAPI) SearchLocations(ctx context.Context, params tripadvisor.SearchParams) (*model.Envelope[model.Location], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Location]), args.Error(1)
}

func (m *MockContentAPI) GetLocationDetails(ctx context.Context, locationID, language string) (*model.Location, error) {
	args := m.Called(ctx, locationID, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockContentAPI) GetLocationPhotos(ctx context.Context, locationID, language string) (*model.Envelope[model.Photo], error) {
	args := m.Called(ctx, locationID, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Photo]), args.Error(1)
}

func (m *MockContentAPI) GetLocationReviews(ctx context.Context, locationID, language string, limit int) (*model.Envelope[model.Review], error) {
	args := m.Called(ctx, locationID, language, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Review]), args.Error(1)
}

func (m *MockContentAPI) SearchRestaurants(ctx context.Context, query string, limit int) (*model.Envelope[model.Location], error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Location]), args.Error(1)
}

func (m *MockContentAPI) SearchHotels(ctx context.Context, query string, limit int) (*model.Envelope[model.Location], error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Location]), args.Error(1)
}

func (m *MockContentAPI) SearchAttractions(ctx context.Context, query string, limit int) (*model.Envelope[model.Location], error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Location]), args.Error(1)
}

func (m *MockContentAPI) GetNearbyLocations(ctx context.Context, params tripadvisor.NearbyParams) (*model.Envelope[model.Location], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Location]), args.Error(1)
}

func locations(ids ...string) *model.Envelope[model.Location] {
	env := &model.Envelope[model.Location]{Data: []model.Location{}}
	for _, id := range ids {
		env.Data = append(env.Data, model.Location{LocationID: id, Name: "Place " + id})
	}
	return env
}

func reviews(ids ...string) *model.Envelope[model.Review] {
	env := &model.Envelope[model.Review]{Data: []model.Review{}}
	for _, id := range ids {
		env.Data = append(env.Data, model.Review{ID: id, Title: "Review " + id})
	}
	return env
}

var errUpstream = &tripadvisor.UpstreamRequestError{
	Endpoint:   "/location/search",
	StatusCode: http.StatusInternalServerError,
	Status:     "500 Internal Server Error",
}

func newTestService(api *MockContentAPI) *Service {
	svc := NewService(api, zap.NewNop())
	svc.intn = func(n int) int { return n - 1 }
	return svc
}

func TestService_Highlights(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockContentAPI)
		restaurants int
		hotels      int
		attractions int
	}{
		{
			name: "all categories succeed",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchRestaurants", mock.Anything, "Marrakech best restaurants", 6).Return(locations("1", "2"), nil)
				api.On("SearchHotels", mock.Anything, "Marrakech luxury riads hotels", 6).Return(locations("3"), nil)
				api.On("SearchAttractions", mock.Anything, "Marrakech top attractions", 6).Return(locations(), nil)
			},
			restaurants: 2,
			hotels:      1,
			attractions: 0,
		},
		{
			name: "results capped at six",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchRestaurants", mock.Anything, mock.Anything, 6).Return(locations("1", "2", "3", "4", "5", "6", "7", "8"), nil)
				api.On("SearchHotels", mock.Anything, mock.Anything, 6).Return(locations("9"), nil)
				api.On("SearchAttractions", mock.Anything, mock.Anything, 6).Return(locations("10"), nil)
			},
			restaurants: 6,
			hotels:      1,
			attractions: 1,
		},
		{
			name: "one failure degrades to empty",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchRestaurants", mock.Anything, mock.Anything, 6).Return(locations("1"), nil).Maybe()
				api.On("SearchHotels", mock.Anything, mock.Anything, 6).Return(nil, errUpstream)
				api.On("SearchAttractions", mock.Anything, mock.Anything, 6).Return(locations("2"), nil).Maybe()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockContentAPI)
			tt.setupMocks(api)
			svc := newTestService(api)

			got := svc.Highlights(context.Background())

			require.NotNil(t, got.Restaurants)
			require.NotNil(t, got.Hotels)
			require.NotNil(t, got.Attractions)
			assert.Len(t, got.Restaurants, tt.restaurants)
			assert.Len(t, got.Hotels, tt.hotels)
			assert.Len(t, got.Attractions, tt.attractions)
			api.AssertExpectations(t)
		})
	}
}

func TestService_FeaturedReview(t *testing.T) {
	featuredSearch := tripadvisor.SearchParams{Query: "Marrakech popular places", Category: "attractions", Limit: 10}

	tests := []struct {
		name           string
		setupMocks     func(*MockContentAPI)
		expectedResult *model.FeaturedReview
		expectedError  bool
	}{
		{
			name: "picks a location and a review",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchLocations", mock.Anything, featuredSearch).Return(locations("1", "2"), nil)
				api.On("GetLocationReviews", mock.Anything, "2", "", 5).Return(reviews("r1", "r2", "r3"), nil)
			},
			expectedResult: &model.FeaturedReview{
				Location: model.Location{LocationID: "2", Name: "Place 2"},
				Review:   model.Review{ID: "r3", Title: "Review r3"},
			},
		},
		{
			name: "no locations",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchLocations", mock.Anything, featuredSearch).Return(locations(), nil)
			},
		},
		{
			name: "no reviews",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchLocations", mock.Anything, featuredSearch).Return(locations("1"), nil)
				api.On("GetLocationReviews", mock.Anything, "1", "", 5).Return(reviews(), nil)
			},
		},
		{
			name: "search failure propagates",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchLocations", mock.Anything, featuredSearch).Return(nil, errUpstream)
			},
			expectedError: true,
		},
		{
			name: "reviews failure propagates",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchLocations", mock.Anything, featuredSearch).Return(locations("1"), nil)
				api.On("GetLocationReviews", mock.Anything, "1", "", 5).Return(nil, errUpstream)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockContentAPI)
			tt.setupMocks(api)
			svc := newTestService(api)

			got, err := svc.FeaturedReview(context.Background())

			if tt.expectedError {
				var aggErr *AggregationError
				require.True(t, errors.As(err, &aggErr))
				assert.True(t, tripadvisor.IsUpstreamError(err))
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, got)
			}
			api.AssertExpectations(t)
		})
	}
}

func TestService_FeaturedReview_StaysInRange(t *testing.T) {
	api := new(MockContentAPI)
	api.On("SearchLocations", mock.Anything, mock.Anything).Return(locations("1", "2", "3"), nil)
	api.On("GetLocationReviews", mock.Anything, mock.Anything, "", 5).Return(reviews("a", "b"), nil)
	svc := NewService(api, zap.NewNop())

	for i := 0; i < 20; i++ {
		got, err := svc.FeaturedReview(context.Background())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Contains(t, []string{"1", "2", "3"}, got.Location.LocationID)
		assert.Contains(t, []string{"a", "b"}, got.Review.ID)
	}
}

func TestService_Search(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		category    string
		setupMocks  func(*MockContentAPI)
		expectedIDs []string
		expectError bool
	}{
		{
			name:        "blank query makes no request",
			query:       "   ",
			setupMocks:  func(api *MockContentAPI) {},
			expectedIDs: []string{},
		},
		{
			name:  "no category returns everything",
			query: "riad",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchLocations", mock.Anything, tripadvisor.SearchParams{Query: "riad", Limit: 20}).
					Return(locations("1", "2"), nil)
			},
			expectedIDs: []string{"1", "2"},
		},
		{
			name:     "all is no category",
			query:    "riad",
			category: "all",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchLocations", mock.Anything, tripadvisor.SearchParams{Query: "riad", Limit: 20}).
					Return(locations("1"), nil)
			},
			expectedIDs: []string{"1"},
		},
		{
			name:     "category filters and stamps missing categories",
			query:    "riad",
			category: "hotels",
			setupMocks: func(api *MockContentAPI) {
				env := &model.Envelope[model.Location]{Data: []model.Location{
					{LocationID: "1", Category: model.CategoryCode("hotels")},
					{LocationID: "2", Category: model.CategoryCode("restaurants")},
					{LocationID: "3"},
				}}
				api.On("SearchLocations", mock.Anything, tripadvisor.SearchParams{Query: "riad", Category: "hotels", Limit: 20}).
					Return(env, nil)
			},
			expectedIDs: []string{"1", "3"},
		},
		{
			name:  "upstream failure",
			query: "riad",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchLocations", mock.Anything, mock.Anything).Return(nil, errUpstream)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockContentAPI)
			tt.setupMocks(api)
			svc := newTestService(api)

			got, err := svc.Search(context.Background(), tt.query, tt.category, 20)

			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, tripadvisor.IsUpstreamError(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, loc := range got {
				ids = append(ids, loc.LocationID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			api.AssertExpectations(t)
		})
	}
}

func TestService_CategoryData(t *testing.T) {
	tests := []struct {
		category   string
		setupMocks func(*MockContentAPI)
	}{
		{
			category: "restaurants",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchRestaurants", mock.Anything, "", 0).Return(locations("1"), nil)
			},
		},
		{
			category: "hotels",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchHotels", mock.Anything, "", 0).Return(locations("1"), nil)
			},
		},
		{
			category: "attractions",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchAttractions", mock.Anything, "", 0).Return(locations("1"), nil)
			},
		},
		{
			category: "shopping",
			setupMocks: func(api *MockContentAPI) {
				api.On("SearchLocations", mock.Anything, tripadvisor.SearchParams{Query: "Marrakech shopping"}).
					Return(locations("1"), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			api := new(MockContentAPI)
			tt.setupMocks(api)
			svc := newTestService(api)

			got, err := svc.CategoryData(context.Background(), tt.category)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			api.AssertExpectations(t)
		})
	}
}

func TestService_LocationPassThroughs(t *testing.T) {
	api := new(MockContentAPI)
	api.On("GetLocationDetails", mock.Anything, "42", "fr").Return(&model.Location{LocationID: "42"}, nil)
	api.On("GetLocationPhotos", mock.Anything, "42", "").Return(&model.Envelope[model.Photo]{}, nil)
	api.On("GetLocationReviews", mock.Anything, "42", "", 3).Return(reviews("a"), nil)
	api.On("GetNearbyLocations", mock.Anything, tripadvisor.NearbyParams{Category: "hotels", Limit: 5}).
		Return(locations("7"), nil)
	svc := newTestService(api)
	ctx := context.Background()

	loc, err := svc.LocationDetails(ctx, "42", "fr")
	require.NoError(t, err)
	assert.Equal(t, "42", loc.LocationID)

	photos, err := svc.LocationPhotos(ctx, "42", "")
	require.NoError(t, err)
	assert.NotNil(t, photos)
	assert.Empty(t, photos)

	revs, err := svc.LocationReviews(ctx, "42", "", 3)
	require.NoError(t, err)
	assert.Len(t, revs, 1)

	nearby, err := svc.Nearby(ctx, model.NearbyRequest{Category: "hotels", Limit: 5})
	require.NoError(t, err)
	assert.Len(t, nearby, 1)

	api.AssertExpectations(t)
}

func TestService_LocationDetails_MissingID(t *testing.T) {
	api := new(MockContentAPI)
	api.On("GetLocationDetails", mock.Anything, "", "").Return(nil, tripadvisor.ErrMissingLocationID)
	svc := newTestService(api)

	_, err := svc.LocationDetails(context.Background(), "", "")
	assert.ErrorIs(t, err, tripadvisor.ErrMissingLocationID)
}
