package menu

// Category is a closed set of menu section labels. Anything outside the
// set matches nothing, it is never an error.
type Category string

const (
	CategoryAppetizers  Category = "Appetizers"
	CategorySoup        Category = "Soup"
	CategoryEggFooYoung Category = "Egg Foo Young"
	CategorySeafood     Category = "Seafood Combination"
	CategoryBeef        Category = "Beef"
	CategoryPork        Category = "Pork"
	CategoryVegetarian  Category = "Vegetarian's Choice"
	CategoryPoultry     Category = "Poultry"
	CategoryNoodles     Category = "Lo Mein, Fried Rice, Noodle & Chow Mein"
	CategoryLunch       Category = "Lunch Special"
	CategoryDrink       Category = "Drink"
)

var validCategories = map[Category]bool{
	CategoryAppetizers:  true,
	CategorySoup:        true,
	CategoryEggFooYoung: true,
	CategorySeafood:     true,
	CategoryBeef:        true,
	CategoryPork:        true,
	CategoryVegetarian:  true,
	CategoryPoultry:     true,
	CategoryNoodles:     true,
	CategoryLunch:       true,
	CategoryDrink:       true,
}

// IsValidCategory reports whether label is one of the known section labels.
// The match is exact and case-sensitive.
func IsValidCategory(label string) bool {
	return validCategories[Category(label)]
}

// Item is one orderable menu entry. Items are loaded once at startup
// and never mutated.
type Item struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	IsLunchItem bool     `json:"is_lunch_item"`
}
