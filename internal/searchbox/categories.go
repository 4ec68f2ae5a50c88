package searchbox

// Category is one entry of the search box category selector
type Category struct {
	Code  string
	Label string
}

// CategoryAll searches across every category
const CategoryAll = "all"

// Categories are the selector entries in display order
var Categories = []Category{
	{Code: CategoryAll, Label: "All Categories"},
	{Code: "restaurants", Label: "Restaurants"},
	{Code: "hotels", Label: "Hotels & Riads"},
	{Code: "attractions", Label: "Attractions"},
	{Code: "shopping", Label: "Shopping"},
	{Code: "nightlife", Label: "Cafés & Bars"},
}

// offeredCategories restricts Categories to the given codes, keeping display
// order. An empty list offers every category. "all" is always offered.
func offeredCategories(codes []string) []Category {
	if len(codes) == 0 {
		return Categories
	}
	allowed := make(map[string]bool, len(codes))
	for _, code := range codes {
		allowed[code] = true
	}

	offered := []Category{Categories[0]}
	for _, c := range Categories[1:] {
		if allowed[c.Code] {
			offered = append(offered, c)
		}
	}
	return offered
}
