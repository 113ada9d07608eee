package service

import (
	"context"
	"time"

	"gourmet-order/internal/catalog"
	"gourmet-order/internal/model"
	"gourmet-order/internal/notifier"
	"gourmet-order/internal/session"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	catalog       *catalog.Catalog
	notifier      notifier.Notifier
	notifyTimeout time.Duration
	now           func() time.Time
	logger        zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cat *catalog.Catalog,
	notif notifier.Notifier,
	notifyTimeout time.Duration,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		catalog:       cat,
		notifier:      notif,
		notifyTimeout: notifyTimeout,
		now:           time.Now,
		logger:        logger.With().Str("service", "cart").Logger(),
	}
}

// AddToCart merges quantity of a dish into the cart ledger. The unit price
// comes from the catalog at the time of the first add.
func (s *cartService) AddToCart(ctx context.Context, sess *session.Session, dish string, quantity int) (model.CartEntry, error) {
	if quantity <= 0 {
		s.logger.Warn().
			Str("session_id", sess.ID.String()).
			Str("dish", dish).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return model.CartEntry{}, model.ErrInvalidQuantity
	}

	item, ok := s.catalog.Lookup(dish)
	if !ok {
		s.logger.Warn().
			Str("session_id", sess.ID.String()).
			Str("dish", dish).
			Msg("dish not on the menu")
		return model.CartEntry{}, model.ErrDishNotFound
	}

	entry := sess.AddItem(dish, quantity, item.Price)

	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Str("dish", dish).
		Int("added", quantity).
		Int("quantity", entry.Quantity).
		Msg("dish added to cart")

	return entry, nil
}

// RemoveFromCart deletes the cart entry for the dish unconditionally.
func (s *cartService) RemoveFromCart(ctx context.Context, sess *session.Session, dish string) bool {
	removed := sess.RemoveItem(dish)

	s.logger.Debug().
		Str("session_id", sess.ID.String()).
		Str("dish", dish).
		Bool("removed", removed).
		Msg("remove from cart")

	return removed
}

// GetCart returns the current cart ledger and its grand total.
func (s *cartService) GetCart(ctx context.Context, sess *session.Session) *model.CartResponse {
	return &model.CartResponse{
		Items: sess.Entries(),
		Total: sess.Total(),
	}
}

// Checkout drains the cart into the order history, one row per unit of
// quantity, then sends the order summary to the notifier. Notification is
// best-effort: failures are logged and never affect the checkout outcome.
func (s *cartService) Checkout(ctx context.Context, sess *session.Session) (*model.CheckoutResponse, error) {
	entries, rows, total := sess.Checkout(s.now())
	if len(rows) == 0 {
		s.logger.Warn().
			Str("session_id", sess.ID.String()).
			Msg("checkout attempted with empty cart")
		return nil, model.ErrEmptyCheckout
	}

	pending := make([]string, len(entries))
	for i, entry := range entries {
		pending[i] = entry.Dish
	}

	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Int("order_rows", len(rows)).
		Float64("total", total).
		Msg("checkout completed")

	s.notify(ctx, sess, entries, total)

	return &model.CheckoutResponse{
		Total:          total,
		OrderCount:     len(rows),
		PendingRatings: pending,
	}, nil
}

// notify sends the order summary with a bounded timeout and swallows errors.
func (s *cartService) notify(ctx context.Context, sess *session.Session, entries []model.CartEntry, total float64) {
	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	summary := notifier.FormatOrderSummary(entries, total)
	if err := s.notifier.Notify(notifyCtx, summary); err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", sess.ID.String()).
			Msg("order notification failed")
	}
}
