package model

// Envelope is the uniform {data: [...]} shape returned by every content API list call
type Envelope[T any] struct {
	Data []T `json:"data"`
}

// Items returns the wrapped items, never nil
func (e *Envelope[T]) Items() []T {
	if e == nil || e.Data == nil {
		return []T{}
	}
	return e.Data
}

// HighlightsLimit bounds each category of the homepage highlights
const HighlightsLimit = 6

// Highlights is the fixed-shape homepage aggregate
type Highlights struct {
	Restaurants []Location `json:"restaurants"`
	Hotels      []Location `json:"hotels"`
	Attractions []Location `json:"attractions"`
}

// EmptyHighlights returns the fixed shape with empty sequences
func EmptyHighlights() Highlights {
	return Highlights{
		Restaurants: []Location{},
		Hotels:      []Location{},
		Attractions: []Location{},
	}
}

// FeaturedReview pairs a randomly selected location with one of its reviews
type FeaturedReview struct {
	Location Location `json:"location"`
	Review   Review   `json:"review"`
}
