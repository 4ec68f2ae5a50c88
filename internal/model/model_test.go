package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		assert func(t *testing.T, loc Location)
	}{
		{
			name: "upstream string-encoded numbers",
			body: `{"location_id":"293734","name":"Jardin Majorelle","rating":"4.5","num_reviews":"1,234",
				"category":{"name":"attraction","localized_name":"Attraction"},
				"address_obj":{"street1":"Rue Yves St Laurent","city":"Marrakech","country":"Morocco"},
				"latitude":"31.6417","longitude":"-8.0033","awards":[{"award_type":"Travelers Choice","year":"2024","display_name":"Travelers Choice"}]}`,
			assert: func(t *testing.T, loc Location) {
				assert.Equal(t, "293734", loc.LocationID)
				require.NotNil(t, loc.Rating)
				assert.Equal(t, 4.5, *loc.Rating)
				require.NotNil(t, loc.NumReviews)
				assert.Equal(t, 1234, *loc.NumReviews)
				assert.Equal(t, "Attraction", loc.Category.Name)
				assert.Equal(t, "Marrakech", loc.Address.City)
				assert.Len(t, loc.Awards, 1)
				require.NotNil(t, loc.Latitude)
				assert.Equal(t, 31.6417, *loc.Latitude)
			},
		},
		{
			name: "numeric id and values with string category",
			body: `{"location_id":42,"name":"Riad","rating":4,"num_reviews":12,"category":"hotels"}`,
			assert: func(t *testing.T, loc Location) {
				assert.Equal(t, "42", loc.LocationID)
				assert.Equal(t, 4.0, *loc.Rating)
				assert.Equal(t, 12, *loc.NumReviews)
				assert.Equal(t, CategoryCode("hotels"), loc.Category)
			},
		},
		{
			name: "everything optional missing",
			body: `{"location_id":"1","name":"Bare","rating":"","num_reviews":null}`,
			assert: func(t *testing.T, loc Location) {
				assert.Nil(t, loc.Rating)
				assert.Nil(t, loc.NumReviews)
				assert.Nil(t, loc.Address)
				assert.True(t, loc.Category.IsZero())
				assert.Empty(t, loc.Photos)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var loc Location
			require.NoError(t, json.Unmarshal([]byte(tt.body), &loc))
			tt.assert(t, loc)
		})
	}
}

func TestLocation_RoundTrip(t *testing.T) {
	rating := 4.5
	reviews := 10
	in := Location{
		LocationID: "7",
		Name:       "Le Jardin",
		Category:   NamedCategory("restaurant", "Restaurant"),
		Rating:     &rating,
		NumReviews: &reviews,
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Location
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestCategory_JSON(t *testing.T) {
	data, err := json.Marshal(CategoryCode("hotels"))
	require.NoError(t, err)
	assert.JSONEq(t, `"hotels"`, string(data))

	data, err = json.Marshal(NamedCategory("hotel", "Hotel"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"hotel","name":"Hotel"}`, string(data))

	data, err = json.Marshal(Category{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var c Category
	require.NoError(t, json.Unmarshal([]byte(`{"name":"restaurant"}`), &c))
	assert.Equal(t, NamedCategory("", "restaurant"), c)
}

func TestReview_UnmarshalJSON(t *testing.T) {
	body := `{"id":987,"location_id":"293734","rating":5,"title":"Stunning","text":"Blue everywhere",
		"published_date":"2024-03-01T10:00:00Z","user":{"username":"amina","user_location":{"id":"1","name":"Rabat"}}}`

	var r Review
	require.NoError(t, json.Unmarshal([]byte(body), &r))
	assert.Equal(t, "987", r.ID)
	assert.Equal(t, 5.0, *r.Rating)
	require.NotNil(t, r.Author)
	assert.Equal(t, "amina", r.Author.Username)
	assert.Equal(t, "Rabat", r.Author.LocationName)
}

func TestEnvelope_Items(t *testing.T) {
	var nilEnvelope *Envelope[Location]
	assert.NotNil(t, nilEnvelope.Items())
	assert.Empty(t, nilEnvelope.Items())

	var env Envelope[Location]
	require.NoError(t, json.Unmarshal([]byte(`{}`), &env))
	assert.NotNil(t, env.Items())
	assert.Empty(t, env.Items())

	require.NoError(t, json.Unmarshal([]byte(`{"data":[{"location_id":"1","name":"A"}]}`), &env))
	assert.Len(t, env.Items(), 1)
}
