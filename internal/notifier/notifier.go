package notifier

import (
	"context"
	"fmt"
	"strings"

	"gourmet-order/internal/model"
)

// Notifier delivers order summaries to an external chat endpoint. Delivery
// is best-effort: callers log failures and move on, a checkout never rolls
// back because a notification did not get through.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// FormatOrderSummary renders the checkout summary sent to the notifier: one
// line per dish with quantity and line total, then the grand total.
func FormatOrderSummary(entries []model.CartEntry, total float64) string {
	var b strings.Builder
	b.WriteString("New order received:\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "  %s × %d — $%.2f\n", entry.Dish, entry.Quantity, entry.LineTotal())
	}
	fmt.Fprintf(&b, "Total: $%.2f", total)
	return b.String()
}

// noopNotifier silently discards notifications. Used when no endpoint is
// configured.
type noopNotifier struct{}

// NewNoop creates a notifier that does nothing.
func NewNoop() Notifier {
	return noopNotifier{}
}

func (noopNotifier) Notify(ctx context.Context, text string) error {
	return nil
}
