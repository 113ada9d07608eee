package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gourmet-order/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMenuFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	path := writeMenuFile(t, `[
		{"name": "Signature Pizza", "price": 18.99, "icon": "🍕", "description": "Premium toppings", "category": "Chef's Favorites"},
		{"name": "Coffee", "price": 3.99, "icon": "☕", "description": "Arabica", "category": "Beverages"}
	]`)

	loader := NewFileLoader(zerolog.Nop())
	items, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Signature Pizza", items[0].Name)
	assert.Equal(t, 3.99, items[1].Price)
}

func TestFileLoader_Load_MissingFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFileLoader_Load_InvalidJSON(t *testing.T) {
	path := writeMenuFile(t, `{"not": "an array"}`)

	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestFileLoader_Load_EmptyMenu(t *testing.T) {
	path := writeMenuFile(t, `[]`)

	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no items")
}

// failingLoader always errors, standing in for an unreachable S3 bucket.
type failingLoader struct{}

func (failingLoader) Load(ctx context.Context, source string) ([]model.MenuItem, error) {
	return nil, assert.AnError
}

func TestFallbackLoader_FallsBackToFile(t *testing.T) {
	path := writeMenuFile(t, `[
		{"name": "Coffee", "price": 3.99, "icon": "☕", "description": "Arabica", "category": "Beverages"}
	]`)

	loader := NewFallbackLoader(failingLoader{}, NewFileLoader(zerolog.Nop()), "menu.json", true, zerolog.Nop())
	items, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee", items[0].Name)
}

func TestFallbackLoader_S3Disabled(t *testing.T) {
	path := writeMenuFile(t, `[
		{"name": "Coffee", "price": 3.99, "icon": "☕", "description": "Arabica", "category": "Beverages"}
	]`)

	loader := NewFallbackLoader(nil, NewFileLoader(zerolog.Nop()), "menu.json", false, zerolog.Nop())
	items, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
