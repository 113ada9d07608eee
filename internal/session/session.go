package session

import (
	"sort"
	"sync"
	"time"

	"gourmet-order/internal/model"

	"github.com/google/uuid"
)

// CheckoutCategory is the category recorded on order rows created at
// checkout. A checkout can span several menu categories, so rows are tagged
// "Mixed" rather than carrying the dish's own category.
const CheckoutCategory = "Mixed"

// Session holds all mutable state for one ordering session: the cart ledger,
// the append-only order history and the set of dishes awaiting a rating.
// Each session is one logical actor, but the HTTP server is concurrent, so
// mutations are serialised by a mutex.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	cart    map[string]model.CartEntry
	orders  []model.Order
	pending map[string]struct{}
}

func newSession(id uuid.UUID) *Session {
	return &Session{
		ID:      id,
		cart:    make(map[string]model.CartEntry),
		pending: make(map[string]struct{}),
	}
}

// AddItem merges quantity into the cart ledger. The cart holds at most one
// entry per dish; the unit price is fixed by the first add and later adds
// only increment the quantity. Returns the resulting entry.
func (s *Session) AddItem(dish string, quantity int, unitPrice float64) model.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.cart[dish]
	if exists {
		entry.Quantity += quantity
	} else {
		entry = model.CartEntry{Dish: dish, Quantity: quantity, UnitPrice: unitPrice}
	}
	s.cart[dish] = entry
	return entry
}

// RemoveItem deletes the cart entry for the dish, if present. Returns true
// if an entry was removed.
func (s *Session) RemoveItem(dish string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.cart[dish]
	delete(s.cart, dish)
	return exists
}

// Entries returns the cart ledger sorted by dish name.
func (s *Session) Entries() []model.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entriesLocked()
}

func (s *Session) entriesLocked() []model.CartEntry {
	entries := make([]model.CartEntry, 0, len(s.cart))
	for _, entry := range s.cart {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Dish < entries[j].Dish })
	return entries
}

// Total returns the cart grand total; zero for an empty cart.
func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Session) totalLocked() float64 {
	var total float64
	for _, entry := range s.cart {
		total += entry.LineTotal()
	}
	return total
}

// Checkout drains the cart into the order history: one order row per unit of
// quantity, rating unset, category "Mixed". Every purchased dish is marked as
// awaiting a rating and the cart is cleared. The whole transition happens
// under one lock so no other mutation can observe a half-completed checkout.
// Returns the drained entries, the created rows and the grand total; all
// zero values when the cart is empty or totals zero.
func (s *Session) Checkout(now time.Time) ([]model.CartEntry, []model.Order, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.totalLocked()
	if len(s.cart) == 0 || total == 0 {
		return nil, nil, 0
	}

	entries := s.entriesLocked()
	var rows []model.Order
	for _, entry := range entries {
		for i := 0; i < entry.Quantity; i++ {
			rows = append(rows, model.Order{
				ID:        uuid.New(),
				Dish:      entry.Dish,
				Category:  CheckoutCategory,
				Amount:    entry.UnitPrice,
				CreatedAt: now,
			})
		}
		s.pending[entry.Dish] = struct{}{}
	}

	s.orders = append(s.orders, rows...)
	s.cart = make(map[string]model.CartEntry)
	return entries, rows, total
}

// FillRatings sets the rating on every order row for the dish that has no
// rating yet, and clears the dish from the pending set. Rows already rated
// are never touched. Returns the number of rows updated; zero when the dish
// has nothing outstanding.
func (s *Session) FillRatings(dish string, stars int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for i := range s.orders {
		if s.orders[i].Dish == dish && s.orders[i].Rating == nil {
			rating := stars
			s.orders[i].Rating = &rating
			updated++
		}
	}
	delete(s.pending, dish)
	return updated
}

// PendingDishes returns the dishes awaiting a rating, sorted by name.
func (s *Session) PendingDishes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	dishes := make([]string, 0, len(s.pending))
	for dish := range s.pending {
		dishes = append(dishes, dish)
	}
	sort.Strings(dishes)
	return dishes
}

// IsPending reports whether the dish is awaiting a rating.
func (s *Session) IsPending(dish string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[dish]
	return ok
}

// OrdersSnapshot returns a copy of the order history for read-only use by
// the dashboard aggregator.
func (s *Session) OrdersSnapshot() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]model.Order, len(s.orders))
	copy(snapshot, s.orders)
	return snapshot
}

// OrderCount returns the number of rows in the order history.
func (s *Session) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// seedOrders appends pre-built historical rows without touching the pending
// set. Used only when populating a fresh demo session.
func (s *Session) seedOrders(rows []model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, rows...)
}
