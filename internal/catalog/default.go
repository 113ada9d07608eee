package catalog

import "gourmet-order/internal/model"

// DefaultItems returns the built-in menu, used when no external catalog
// source is configured or loadable.
func DefaultItems() []model.MenuItem {
	return []model.MenuItem{
		{Name: "Signature Pizza", Price: 18.99, Icon: "🍕", Description: "Premium toppings & mozzarella", Category: "Chef's Favorites"},
		{Name: "Gourmet Burger", Price: 15.99, Icon: "🍔", Description: "Wagyu beef & aged cheddar", Category: "Chef's Favorites"},
		{Name: "Truffle Pasta", Price: 22.99, Icon: "🍝", Description: "Black-truffle cream sauce", Category: "Chef's Favorites"},
		{Name: "BBQ Ribs", Price: 24.99, Icon: "🍖", Description: "Slow-smoked hickory ribs", Category: "Meats"},
		{Name: "Grilled Chicken", Price: 16.99, Icon: "🍗", Description: "Herb-marinated breast", Category: "Meats"},
		{Name: "Beef Steak", Price: 28.99, Icon: "🥩", Description: "Prime rib-eye 300 g", Category: "Meats"},
		{Name: "Mediterranean Salad", Price: 12.99, Icon: "🥗", Description: "Feta, olives, citrus vinaigrette", Category: "Vegetables"},
		{Name: "Veggie Burger", Price: 13.99, Icon: "🥬", Description: "Plant-based patty & avo", Category: "Vegetables"},
		{Name: "Quinoa Bowl", Price: 14.99, Icon: "🥙", Description: "Roasted veg & tahini", Category: "Vegetables"},
		{Name: "Chocolate Cake", Price: 8.99, Icon: "🍰", Description: "Rich 3-layer ganache", Category: "Desserts"},
		{Name: "Tiramisu", Price: 9.99, Icon: "🍮", Description: "Classic mascarpone coffee", Category: "Desserts"},
		{Name: "Ice Cream Sundae", Price: 6.99, Icon: "🍨", Description: "Vanilla with toppings", Category: "Desserts"},
		{Name: "Fresh Juice", Price: 4.99, Icon: "🧃", Description: "Orange / Apple / Carrot", Category: "Beverages"},
		{Name: "Smoothie", Price: 5.99, Icon: "🥤", Description: "Berry mix, dairy-free", Category: "Beverages"},
		{Name: "Coffee", Price: 3.99, Icon: "☕", Description: "Arabica, any style", Category: "Beverages"},
	}
}

// Default builds a catalog from the built-in menu.
func Default() *Catalog {
	c, err := New(DefaultItems())
	if err != nil {
		// The built-in menu is static and valid by construction.
		panic(err)
	}
	return c
}
