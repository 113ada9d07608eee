package handler

import (
	"encoding/json"
	"net/http"

	"gourmet-order/internal/model"
	"gourmet-order/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess, ok := sessionFromRequest(w, r, h.logger)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.service.GetCart(r.Context(), sess))
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess, ok := sessionFromRequest(w, r, h.logger)
	if !ok {
		return
	}

	var req model.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.Dish == "" {
		writeError(w, http.StatusBadRequest, "dish is required", h.logger)
		return
	}

	entry, err := h.service.AddToCart(r.Context(), sess, req.Dish, req.Quantity)
	if err != nil {
		status := http.StatusInternalServerError
		message := "failed to add to cart"

		switch err {
		case model.ErrInvalidQuantity:
			status = http.StatusBadRequest
			message = "quantity must be greater than zero"
		case model.ErrDishNotFound:
			status = http.StatusNotFound
			message = "dish is not on the menu"
		}

		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// RemoveItem handles DELETE /api/cart/items/{dish} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess, ok := sessionFromRequest(w, r, h.logger)
	if !ok {
		return
	}

	// Extract dish name from path
	// Expecting path: /api/cart/items/{dish}
	const prefix = "/api/cart/items/"
	if len(r.URL.Path) <= len(prefix) {
		writeError(w, http.StatusBadRequest, "dish is required", h.logger)
		return
	}
	dish := r.URL.Path[len(prefix):]

	// Removing an absent dish is a no-op either way; 204 regardless.
	h.service.RemoveFromCart(r.Context(), sess, dish)
	w.WriteHeader(http.StatusNoContent)
}

// Checkout handles POST /api/cart/checkout requests.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess, ok := sessionFromRequest(w, r, h.logger)
	if !ok {
		return
	}

	resp, err := h.service.Checkout(r.Context(), sess)
	if err != nil {
		status := http.StatusInternalServerError
		message := "failed to check out"

		if err == model.ErrEmptyCheckout {
			status = http.StatusBadRequest
			message = "cart is empty, nothing to check out"
		}

		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
