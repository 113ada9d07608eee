package service

import (
	"context"

	"gourmet-order/internal/model"
	"gourmet-order/internal/session"
)

// CartService defines operations on the cart ledger.
type CartService interface {
	// AddToCart merges quantity of a dish into the cart. Quantity must be
	// positive and the dish must exist in the catalog.
	AddToCart(ctx context.Context, sess *session.Session, dish string, quantity int) (model.CartEntry, error)

	// RemoveFromCart deletes the cart entry for the dish. Returns true if an
	// entry was removed; removing an absent dish is a no-op.
	RemoveFromCart(ctx context.Context, sess *session.Session, dish string) bool

	// GetCart returns the current cart ledger and its grand total.
	GetCart(ctx context.Context, sess *session.Session) *model.CartResponse

	// Checkout converts the cart into order history rows, clears the cart and
	// notifies the configured endpoint best-effort.
	Checkout(ctx context.Context, sess *session.Session) (*model.CheckoutResponse, error)
}

// RatingService defines the post-purchase rating workflow.
type RatingService interface {
	// SubmitRating applies stars to every order row of the dish that has no
	// rating yet. Submitting for a dish with nothing outstanding is a no-op.
	SubmitRating(ctx context.Context, sess *session.Session, dish string, stars int) (*model.RatingResponse, error)

	// PendingDishes returns the dishes awaiting a rating.
	PendingDishes(ctx context.Context, sess *session.Session) []string
}

// DashboardService derives metrics from the order history. Every query
// recomputes from the history at call time; empty input yields zero values
// or sentinels, never an error.
type DashboardService interface {
	TotalRevenue(ctx context.Context, sess *session.Session) float64
	TodayRevenue(ctx context.Context, sess *session.Session) float64
	TotalOrders(ctx context.Context, sess *session.Session) int
	TodayOrders(ctx context.Context, sess *session.Session) int
	AverageOrderValue(ctx context.Context, sess *session.Session) float64
	AverageRating(ctx context.Context, sess *session.Session) float64
	DailyRevenueSeries(ctx context.Context, sess *session.Session, windowDays int) []model.DailyRevenue
	CategoryPopularity(ctx context.Context, sess *session.Session) []model.CategoryCount
	OrdersByHour(ctx context.Context, sess *session.Session) []model.HourCount
	RatingDistribution(ctx context.Context, sess *session.Session) []model.RatingCount
	MostLikedDish(ctx context.Context, sess *session.Session, windowDays int) string

	// Report assembles the full dashboard payload in one call.
	Report(ctx context.Context, sess *session.Session) *model.DashboardReport
}
