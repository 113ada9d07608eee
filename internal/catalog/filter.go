package catalog

import "gourmet-order/internal/model"

// Filter is a pure predicate over menu items: a price range and an optional
// category set. Filtering affects only menu listing, never the cart or the
// order history.
type Filter struct {
	MinPrice   float64
	MaxPrice   float64 // <= 0 means no upper bound
	Categories []string
}

// Matches reports whether the item passes the filter.
func (f Filter) Matches(item model.MenuItem) bool {
	if item.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && item.Price > f.MaxPrice {
		return false
	}
	if len(f.Categories) == 0 {
		return true
	}
	for _, cat := range f.Categories {
		if item.Category == cat {
			return true
		}
	}
	return false
}
