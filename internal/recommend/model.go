package recommend

import "github.com/zaxiaa/keyra-api/internal/menu"

// PriceRange is an inclusive price band. A nil bound falls back to the
// default: 0 for Min, unbounded for Max.
type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// Request carries the optional filters for one recommendation call.
// An empty request matches the whole time-filtered catalog.
type Request struct {
	Category   *string     `json:"category"`
	PriceRange *PriceRange `json:"price_range"`
}

// Response is the ordered set of up to three recommended items.
type Response struct {
	Items []menu.Item `json:"items"`
}
