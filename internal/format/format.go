// Package format turns heterogeneous content API payloads into display-ready values.
// Every function is total: absent or malformed input yields a documented default.
package format

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/AMRENE5435/marrakech.reviews/internal/model"
)

const (
	// DefaultAddress is shown when a location has no usable address parts
	DefaultAddress = "Marrakech, Morocco"
	// FallbackImage is shown when a location has no usable photo
	FallbackImage = "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400&h=300&fit=crop"
	// DefaultTruncateLength is used when TruncateText is given a non-positive limit
	DefaultTruncateLength = 150
	// InlineResultLimit is how many search results are listed before linking to the full search
	InlineResultLimit = 8

	siteURL        = "https://www.tripadvisor.com"
	reviewsURLTmpl = siteURL + "/ShowUserReviews-g%s"
	searchURLTmpl  = siteURL + "/Search?q=%s"

	marrakechLat = 31.6295
	marrakechLng = -7.9811
)

var imageSizePreference = []string{"large", "medium", "small", "thumbnail"}

var categoryLabels = map[string]string{
	"restaurants":   "Restaurant",
	"hotels":        "Hotel",
	"attractions":   "Attraction",
	"geos":          "Location",
	"neighborhoods": "Neighborhood",
}

var priceLevels = map[string]string{
	"$":    "$",
	"$$":   "$$",
	"$$$":  "$$$",
	"$$$$": "$$$$",
}

// Rating formats a rating with exactly one decimal place
func Rating(r *float64) string {
	if r == nil || *r == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(*r, 'f', 1, 64)
}

// ReviewCount formats a review count, abbreviating thousands ("1.5k")
func ReviewCount(n *int) string {
	if n == nil || *n == 0 {
		return "0"
	}
	if *n >= 1000 {
		return strconv.FormatFloat(float64(*n)/1000, 'f', 1, 64) + "k"
	}
	return strconv.Itoa(*n)
}

// Address joins street, city and country
func Address(addr *model.Address) string {
	if addr == nil {
		return DefaultAddress
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{addr.Street1, addr.City, addr.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return DefaultAddress
	}
	return strings.Join(parts, ", ")
}

// BestImage returns the URL of the requested size of the first photo, falling
// back through large, medium, small and thumbnail
func BestImage(photos []model.Photo, size string) string {
	if len(photos) == 0 {
		return FallbackImage
	}
	if size == "" {
		size = "large"
	}

	images := photos[0].Images
	if img, ok := images[size]; ok && img.URL != "" {
		return img.URL
	}
	for _, fallback := range imageSizePreference {
		if img, ok := images[fallback]; ok && img.URL != "" {
			return img.URL
		}
	}
	return FallbackImage
}

// CategoryLabel maps a category code to its label; unknown codes pass through
func CategoryLabel(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return code
}

// CategoryDisplayName resolves a category to a single display string
func CategoryDisplayName(c model.Category) string {
	if c.IsNamed() {
		return c.Name
	}
	if c.Code != "" {
		return CategoryLabel(c.Code)
	}
	return "Place"
}

var reviewDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReviewDate renders a published date relative to now ("3 weeks ago")
func ReviewDate(dateString string, now time.Time) string {
	if dateString == "" {
		return "Recently"
	}

	var date time.Time
	parsed := false
	for _, layout := range reviewDateLayouts {
		if t, err := time.Parse(layout, dateString); err == nil {
			date, parsed = t, true
			break
		}
	}
	if !parsed {
		return "Recently"
	}

	diff := now.Sub(date)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))

	switch {
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return ago(ceilDiv(days, 7), "week")
	case days < 365:
		return ago(ceilDiv(days, 30), "month")
	default:
		return ago(ceilDiv(days, 365), "year")
	}
}

func ago(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// TruncateText cuts text at maxLength runes and appends "..."
func TruncateText(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultTruncateLength
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

// StarRating decomposes a 0-5 rating into star counts summing to 5
func StarRating(rating *float64) model.Stars {
	var r float64
	if rating != nil && !math.IsNaN(*rating) {
		r = math.Max(0, math.Min(5, *rating))
	}

	full := int(math.Floor(r))
	half := 0
	if full < 5 && r-float64(full) >= 0.5 {
		half = 1
	}
	return model.Stars{Full: full, Half: half, Empty: 5 - full - half}
}

// LocationBadges derives the badges shown on a location card. At most one
// rating tier badge is returned.
func LocationBadges(loc model.Location) []string {
	badges := []string{}
	rating := valueOr(loc.Rating, 0)
	reviews := 0
	if loc.NumReviews != nil {
		reviews = *loc.NumReviews
	}

	switch {
	case rating >= 4.5:
		badges = append(badges, "Excellent")
	case rating >= 4.0:
		badges = append(badges, "Very Good")
	case rating >= 3.5:
		badges = append(badges, "Good")
	}

	switch {
	case reviews >= 1000:
		badges = append(badges, "Popular")
	case reviews >= 500:
		badges = append(badges, "Well Reviewed")
	}

	if len(loc.Awards) > 0 {
		badges = append(badges, "Award Winner")
	}
	return badges
}

// TripAdvisorURL returns the deep link for a location
func TripAdvisorURL(locationID string) string {
	if locationID == "" {
		return siteURL
	}
	return fmt.Sprintf(reviewsURLTmpl, locationID)
}

// SearchURL returns the upstream site's full search page for a query
func SearchURL(query string) string {
	return fmt.Sprintf(searchURLTmpl, url.QueryEscape(query))
}

// MoreResultsURL returns the full search link when total exceeds the inline
// limit, and "" otherwise. A non-positive inline uses InlineResultLimit.
func MoreResultsURL(query string, total, inline int) string {
	if inline <= 0 {
		inline = InlineResultLimit
	}
	if total <= inline {
		return ""
	}
	return SearchURL(strings.TrimSpace(query))
}

// PriceLevel normalizes a price level, defaulting to "$$"
func PriceLevel(level string) string {
	if p, ok := priceLevels[level]; ok {
		return p
	}
	return "$$"
}

// Coordinates returns the location's coordinates or the centre of Marrakech
func Coordinates(loc model.Location) model.Coordinate {
	if loc.Latitude != nil && loc.Longitude != nil && (*loc.Latitude != 0 || *loc.Longitude != 0) {
		return model.Coordinate{Lat: *loc.Latitude, Lng: *loc.Longitude}
	}
	return model.Coordinate{Lat: marrakechLat, Lng: marrakechLng}
}

// FilterByCategory keeps the locations whose display category matches the
// display name of the given code
func FilterByCategory(locations []model.Location, code string) []model.Location {
	if code == "" {
		return locations
	}
	want := CategoryDisplayName(model.CategoryCode(code))

	filtered := make([]model.Location, 0, len(locations))
	for _, loc := range locations {
		if strings.EqualFold(CategoryDisplayName(loc.Category), want) {
			filtered = append(filtered, loc)
		}
	}
	return filtered
}

// SortByRating returns a copy sorted by rating, descending unless ascending is set
func SortByRating(locations []model.Location, ascending bool) []model.Location {
	return sortLocations(locations, ascending, func(l model.Location) float64 {
		return valueOr(l.Rating, 0)
	})
}

// SortByReviewCount returns a copy sorted by review count, descending unless ascending is set
func SortByReviewCount(locations []model.Location, ascending bool) []model.Location {
	return sortLocations(locations, ascending, func(l model.Location) float64 {
		if l.NumReviews == nil {
			return 0
		}
		return float64(*l.NumReviews)
	})
}

func sortLocations(locations []model.Location, ascending bool, key func(model.Location) float64) []model.Location {
	sorted := make([]model.Location, len(locations))
	copy(sorted, locations)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return key(sorted[i]) < key(sorted[j])
		}
		return key(sorted[i]) > key(sorted[j])
	})
	return sorted
}

func valueOr(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return def
	}
	return *v
}
