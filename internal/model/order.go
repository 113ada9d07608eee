package model

import (
	"time"

	"github.com/google/uuid"
)

// CartEntry is one line of the cart ledger. The cart is keyed by dish name, so
// at most one entry exists per dish; adding more of the same dish increments
// Quantity. UnitPrice is fixed from the catalog at the time of the first add.
type CartEntry struct {
	Dish      string  `json:"dish"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// LineTotal returns Quantity × UnitPrice.
func (e CartEntry) LineTotal() float64 {
	return float64(e.Quantity) * e.UnitPrice
}

// Order is one completed purchase line-item. Checkout emits one Order per unit
// of quantity purchased. Orders are immutable once created, except Rating,
// which transitions from nil to a 1–5 value exactly once.
type Order struct {
	ID        uuid.UUID `json:"id"`
	Dish      string    `json:"dish"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Rated reports whether a rating has been submitted for this order row.
func (o Order) Rated() bool {
	return o.Rating != nil
}

// AddItemRequest is the payload for adding a dish to the cart.
type AddItemRequest struct {
	Dish     string `json:"dish"`
	Quantity int    `json:"quantity"`
}

// CartResponse is the cart ledger as returned to clients.
type CartResponse struct {
	Items []CartEntry `json:"items"`
	Total float64     `json:"total"`
}

// CheckoutResponse confirms a successful checkout.
type CheckoutResponse struct {
	Total          float64  `json:"total"`
	OrderCount     int      `json:"orderCount"`
	PendingRatings []string `json:"pendingRatings"`
}

// RatingRequest is the payload for submitting a post-purchase rating.
type RatingRequest struct {
	Dish  string `json:"dish"`
	Stars int    `json:"stars"`
}

// RatingResponse reports how many order rows a rating submission updated.
// Updated is zero when the dish had no rating outstanding.
type RatingResponse struct {
	Dish    string `json:"dish"`
	Stars   int    `json:"stars"`
	Updated int    `json:"updated"`
}
