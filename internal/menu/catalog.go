package menu

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed menu.json
var menuData []byte

// Catalog holds the full static set of orderable items. It is read-only
// after LoadCatalog, so concurrent readers need no locking.
type Catalog struct {
	items []Item
}

// LoadCatalog parses the embedded menu data and validates every entry.
// A malformed catalog is a startup failure, not a per-request error.
func LoadCatalog() (*Catalog, error) {
	var items []Item
	if err := json.Unmarshal(menuData, &items); err != nil {
		return nil, fmt.Errorf("parse menu data: %w", err)
	}
	return NewCatalog(items)
}

// NewCatalog validates items and builds an immutable catalog. Names
// must be unique within a category; duplicates across categories are
// allowed.
func NewCatalog(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("menu data is empty")
	}

	seen := map[Category]map[string]bool{}
	for i, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("menu item %d has no name", i)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("menu item %q has negative price", item.Name)
		}
		if !validCategories[item.Category] {
			return nil, fmt.Errorf("menu item %q has unknown category %q", item.Name, item.Category)
		}
		if seen[item.Category] == nil {
			seen[item.Category] = map[string]bool{}
		}
		if seen[item.Category][item.Name] {
			return nil, fmt.Errorf("duplicate menu item %q in category %q", item.Name, item.Category)
		}
		seen[item.Category][item.Name] = true
	}

	return &Catalog{items: items}, nil
}

// Items returns the catalog contents in menu order. Callers must not
// modify the returned slice.
func (c *Catalog) Items() []Item {
	return c.items
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
