package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gourmet-order/internal/catalog"
	"gourmet-order/internal/model"
	"gourmet-order/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNotifier is a mock implementation of notifier.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]model.MenuItem{
		{Name: "A", Price: 5.00, Icon: "🍕", Description: "test dish A", Category: "Pizza"},
		{Name: "B", Price: 3.00, Icon: "☕", Description: "test dish B", Category: "Beverages"},
	})
	require.NoError(t, err)
	return cat
}

func newTestSession() *session.Session {
	store := session.NewStore(nil, zerolog.Nop())
	return store.Create()
}

func TestCartService_AddToCart_SumsQuantities(t *testing.T) {
	mockNotifier := new(MockNotifier)
	svc := NewCartService(testCatalog(t), mockNotifier, time.Second, zerolog.Nop())
	sess := newTestSession()
	ctx := context.Background()

	entry, err := svc.AddToCart(ctx, sess, "A", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Quantity)
	assert.Equal(t, 5.00, entry.UnitPrice)

	entry, err = svc.AddToCart(ctx, sess, "A", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Quantity)
	assert.Equal(t, 5.00, entry.UnitPrice)
}

func TestCartService_AddToCart_InvalidQuantity(t *testing.T) {
	mockNotifier := new(MockNotifier)
	svc := NewCartService(testCatalog(t), mockNotifier, time.Second, zerolog.Nop())
	sess := newTestSession()
	ctx := context.Background()

	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero quantity", quantity: 0},
		{name: "negative quantity", quantity: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddToCart(ctx, sess, "A", tt.quantity)
			assert.ErrorIs(t, err, model.ErrInvalidQuantity)
			// No state change on rejection.
			assert.Empty(t, svc.GetCart(ctx, sess).Items)
		})
	}
}

func TestCartService_AddToCart_UnknownDish(t *testing.T) {
	mockNotifier := new(MockNotifier)
	svc := NewCartService(testCatalog(t), mockNotifier, time.Second, zerolog.Nop())
	sess := newTestSession()

	_, err := svc.AddToCart(context.Background(), sess, "Mystery Meat", 1)
	assert.ErrorIs(t, err, model.ErrDishNotFound)
}

func TestCartService_RemoveFromCart(t *testing.T) {
	mockNotifier := new(MockNotifier)
	svc := NewCartService(testCatalog(t), mockNotifier, time.Second, zerolog.Nop())
	sess := newTestSession()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, sess, "A", 1)
	require.NoError(t, err)

	assert.True(t, svc.RemoveFromCart(ctx, sess, "A"))
	assert.False(t, svc.RemoveFromCart(ctx, sess, "A"))
	assert.Equal(t, 0.0, svc.GetCart(ctx, sess).Total)
}

func TestCartService_Checkout(t *testing.T) {
	mockNotifier := new(MockNotifier)
	svc := NewCartService(testCatalog(t), mockNotifier, time.Second, zerolog.Nop())
	sess := newTestSession()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, sess, "A", 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, sess, "B", 1)
	require.NoError(t, err)

	mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	resp, err := svc.Checkout(ctx, sess)
	require.NoError(t, err)
	require.NotNil(t, resp)

	// 2 units of A plus 1 of B: exactly 3 order rows, $13.00 total.
	assert.Equal(t, 3, resp.OrderCount)
	assert.InDelta(t, 13.00, resp.Total, 1e-9)
	assert.Equal(t, []string{"A", "B"}, resp.PendingRatings)

	// Cart cleared.
	assert.Empty(t, svc.GetCart(ctx, sess).Items)
	assert.Equal(t, 3, sess.OrderCount())

	// Summary carries dish lines and the grand total.
	mockNotifier.AssertExpectations(t)
	summary := mockNotifier.Calls[0].Arguments.String(1)
	assert.Contains(t, summary, "A × 2 — $10.00")
	assert.Contains(t, summary, "B × 1 — $3.00")
	assert.Contains(t, summary, "Total: $13.00")
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	mockNotifier := new(MockNotifier)
	svc := NewCartService(testCatalog(t), mockNotifier, time.Second, zerolog.Nop())
	sess := newTestSession()

	_, err := svc.Checkout(context.Background(), sess)
	assert.ErrorIs(t, err, model.ErrEmptyCheckout)
	assert.Equal(t, 0, sess.OrderCount())

	// No notification for a rejected checkout.
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestCartService_Checkout_NotifierFailureDoesNotFailCheckout(t *testing.T) {
	mockNotifier := new(MockNotifier)
	svc := NewCartService(testCatalog(t), mockNotifier, time.Second, zerolog.Nop())
	sess := newTestSession()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, sess, "B", 1)
	require.NoError(t, err)

	mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("string")).
		Return(errors.New("webhook down"))

	resp, err := svc.Checkout(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.OrderCount)
	assert.Equal(t, 1, sess.OrderCount())
	mockNotifier.AssertExpectations(t)
}
