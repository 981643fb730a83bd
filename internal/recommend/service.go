package recommend

import (
	"math"
	"sort"
	"time"

	"github.com/zaxiaa/keyra-api/internal/menu"
)

type Service struct {
	catalog *menu.Catalog
	loc     *time.Location
}

func NewService(catalog *menu.Catalog, loc *time.Location) *Service {
	return &Service{catalog: catalog, loc: loc}
}

// --------------------------------------------------
// Recommend (filter + tier selection)
// --------------------------------------------------
// Recommend returns up to three items spanning the low, mid, and high
// ends of the matching price spectrum. It is deterministic: the same
// request at the same instant always yields the same ordered list.
func (s *Service) Recommend(req Request, now time.Time) []menu.Item {
	lunchActive := IsLunchWindowActive(now, s.loc)
	candidates := filter(s.catalog.Items(), req, lunchActive)
	return selectByTier(candidates)
}

// --------------------------------------------------
// Candidate filtering
// --------------------------------------------------
// filter narrows the catalog by lunch eligibility, category, and price
// range. The filter is stable: survivors keep catalog order.
func filter(items []menu.Item, req Request, lunchActive bool) []menu.Item {
	minPrice := 0.0
	maxPrice := math.Inf(1)
	if req.PriceRange != nil {
		if req.PriceRange.Min != nil {
			minPrice = *req.PriceRange.Min
		}
		if req.PriceRange.Max != nil {
			maxPrice = *req.PriceRange.Max
		}
	}
	// Inverted range matches nothing.
	if minPrice > maxPrice {
		return nil
	}

	// Unknown category labels match nothing, by contract.
	if req.Category != nil && !menu.IsValidCategory(*req.Category) {
		return nil
	}

	var out []menu.Item
	for _, item := range items {
		if item.IsLunchItem && !lunchActive {
			continue
		}
		if req.Category != nil && item.Category != menu.Category(*req.Category) {
			continue
		}
		if item.Price < minPrice || item.Price > maxPrice {
			continue
		}
		out = append(out, item)
	}
	return out
}

// --------------------------------------------------
// Tier selection
// --------------------------------------------------
// selectByTier sorts candidates by price (stable, so equal prices keep
// catalog order) and splits them into three contiguous tiers with
// boundaries at n/3 and 2n/3; the last tier absorbs any remainder
// (n=7 gives sizes 2,2,3). The cheapest item of each non-empty tier is
// returned, which keeps the result price-ascending.
func selectByTier(candidates []menu.Item) []menu.Item {
	n := len(candidates)
	if n == 0 {
		return nil
	}

	sorted := make([]menu.Item, n)
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	lo := n / 3
	hi := 2 * n / 3

	var picks []menu.Item
	for _, tier := range [][]menu.Item{sorted[:lo], sorted[lo:hi], sorted[hi:]} {
		if len(tier) > 0 {
			picks = append(picks, tier[0])
		}
	}
	return picks
}
