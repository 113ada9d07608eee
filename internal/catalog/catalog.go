package catalog

import (
	"fmt"

	"gourmet-order/internal/model"
)

// Catalog is the read-only menu: every purchasable dish, grouped by category.
// It is built once at startup and never mutated.
type Catalog struct {
	items      []model.MenuItem
	byName     map[string]model.MenuItem
	categories []string
}

// New builds a catalog from a list of menu items. Items are validated: names
// must be unique and non-empty, prices non-negative.
func New(items []model.MenuItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one item")
	}

	c := &Catalog{
		items:  make([]model.MenuItem, 0, len(items)),
		byName: make(map[string]model.MenuItem, len(items)),
	}

	seenCategory := make(map[string]bool)
	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("menu item with empty name")
		}
		if item.Category == "" {
			return nil, fmt.Errorf("menu item %q has no category", item.Name)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("menu item %q has negative price %.2f", item.Name, item.Price)
		}
		if _, exists := c.byName[item.Name]; exists {
			return nil, fmt.Errorf("duplicate menu item %q", item.Name)
		}

		c.items = append(c.items, item)
		c.byName[item.Name] = item
		if !seenCategory[item.Category] {
			seenCategory[item.Category] = true
			c.categories = append(c.categories, item.Category)
		}
	}

	return c, nil
}

// Lookup returns the menu item with the given dish name.
func (c *Catalog) Lookup(dish string) (model.MenuItem, bool) {
	item, ok := c.byName[dish]
	return item, ok
}

// Categories returns all category names in menu order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Items returns the menu items matching the filter, in menu order.
func (c *Catalog) Items(f Filter) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(c.items))
	for _, item := range c.items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// Size returns the number of items on the menu.
func (c *Catalog) Size() int {
	return len(c.items)
}
