package menu

import (
	"sort"
	"strings"
)

// Item is one dish in the static catalog.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
	ImageURL    string   `json:"image_url,omitempty"`
	IsSeasonal  bool     `json:"is_seasonal"`
	Rating      float64  `json:"rating"`
}

// Filters narrows a search result set. Nil pointer fields are ignored.
type Filters struct {
	MinPrice         *float64
	MaxPrice         *float64
	Category         string
	ExcludeAllergens []string
	SeasonalOnly     bool
	MinRating        *float64
}

// Catalog is the fixed dish list plus linear-scan queries over it. The list
// never changes after construction, so reads need no locking.
type Catalog struct {
	items []Item
}

func NewCatalog() *Catalog {
	return &Catalog{items: sampleItems()}
}

// All returns every dish.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ByID looks up a single dish.
func (c *Catalog) ByID(id string) (Item, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Search matches the query against name, description, category and
// ingredients (case-insensitive substring), applies filters, and truncates
// to limit. limit <= 0 means no truncation.
func (c *Catalog) Search(query string, filters *Filters, limit int) []Item {
	q := strings.ToLower(query)
	var results []Item
	for _, item := range c.items {
		if !matchesQuery(item, q) {
			continue
		}
		if filters != nil && !matchesFilters(item, filters) {
			continue
		}
		results = append(results, item)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Categories returns the distinct category names in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

// Seasonal returns every dish flagged as seasonal.
func (c *Catalog) Seasonal() []Item {
	var items []Item
	for _, item := range c.items {
		if item.IsSeasonal {
			items = append(items, item)
		}
	}
	return items
}

// Popular returns the top dishes by rating, descending.
func (c *Catalog) Popular(limit int) []Item {
	items := c.All()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rating > items[j].Rating
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func matchesQuery(item Item, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Name), q) ||
		strings.Contains(strings.ToLower(item.Description), q) ||
		strings.Contains(strings.ToLower(item.Category), q) {
		return true
	}
	for _, ing := range item.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

func matchesFilters(item Item, f *Filters) bool {
	if f.MinPrice != nil && item.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && item.Price > *f.MaxPrice {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.SeasonalOnly && !item.IsSeasonal {
		return false
	}
	if f.MinRating != nil && item.Rating < *f.MinRating {
		return false
	}
	for _, excluded := range f.ExcludeAllergens {
		for _, allergen := range item.Allergens {
			if allergen == excluded {
				return false
			}
		}
	}
	return true
}
