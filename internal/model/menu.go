package model

// MenuItem represents a single dish on the menu. Menu items are loaded once at
// startup and never mutated.
type MenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}
