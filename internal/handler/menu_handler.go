package handler

import (
	"net/http"
	"strconv"
	"strings"

	"gourmet-order/internal/catalog"
	"gourmet-order/internal/model"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu browsing requests.
type MenuHandler struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(cat *catalog.Catalog, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: cat,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET /api/menu requests. Query parameters min_price, max_price
// and categories (comma-separated) filter the listing; the filter never
// affects the cart or the order history.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MenuResponse{
		Categories: h.catalog.Categories(),
		Items:      h.catalog.Items(filter),
	})
}

// filterFromQuery builds a catalog filter from query parameters.
func filterFromQuery(r *http.Request) (catalog.Filter, error) {
	var filter catalog.Filter
	query := r.URL.Query()

	if raw := query.Get("min_price"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			return catalog.Filter{}, errInvalidQueryParam("min_price")
		}
		filter.MinPrice = value
	}

	if raw := query.Get("max_price"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			return catalog.Filter{}, errInvalidQueryParam("max_price")
		}
		filter.MaxPrice = value
	}

	if raw := query.Get("categories"); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				filter.Categories = append(filter.Categories, cat)
			}
		}
	}

	return filter, nil
}

type queryParamError string

func errInvalidQueryParam(name string) error {
	return queryParamError("invalid " + name + " parameter")
}

func (e queryParamError) Error() string {
	return string(e)
}
