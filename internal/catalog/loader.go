package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gourmet-order/internal/model"

	"github.com/rs/zerolog"
)

// Loader loads menu items from a named source (a file path or an object key).
type Loader interface {
	Load(ctx context.Context, source string) ([]model.MenuItem, error)
}

// fileLoader implements Loader for reading menu JSON files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based menu loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a menu file and returns its items. The file is expected to
// contain a JSON array of menu items.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.MenuItem, error) {
	l.logger.Info().Str("file", filePath).Msg("loading menu file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read menu file")
		return nil, fmt.Errorf("failed to read menu file %s: %w", filePath, err)
	}

	items, err := parseMenu(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse menu file")
		return nil, fmt.Errorf("failed to parse menu file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("items_loaded", len(items)).
		Msg("menu file loaded successfully")

	return items, nil
}

// parseMenu decodes a JSON array of menu items.
func parseMenu(data []byte) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid menu JSON: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu contains no items")
	}
	return items, nil
}
