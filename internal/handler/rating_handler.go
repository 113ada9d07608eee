package handler

import (
	"encoding/json"
	"net/http"

	"gourmet-order/internal/model"
	"gourmet-order/internal/service"

	"github.com/rs/zerolog"
)

// RatingHandler handles post-purchase rating requests.
type RatingHandler struct {
	service service.RatingService
	logger  zerolog.Logger
}

// NewRatingHandler creates a new rating handler.
func NewRatingHandler(service service.RatingService, logger zerolog.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		logger:  logger.With().Str("handler", "rating").Logger(),
	}
}

// Pending handles GET /api/ratings/pending requests.
func (h *RatingHandler) Pending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess, ok := sessionFromRequest(w, r, h.logger)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, model.PendingRatingsResponse{
		Pending: h.service.PendingDishes(r.Context(), sess),
	})
}

// Submit handles POST /api/ratings requests.
func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess, ok := sessionFromRequest(w, r, h.logger)
	if !ok {
		return
	}

	var req model.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.Dish == "" {
		writeError(w, http.StatusBadRequest, "dish is required", h.logger)
		return
	}

	resp, err := h.service.SubmitRating(r.Context(), sess, req.Dish, req.Stars)
	if err != nil {
		status := http.StatusInternalServerError
		message := "failed to submit rating"

		if err == model.ErrInvalidRating {
			status = http.StatusBadRequest
			message = "rating must be between 1 and 5"
		}

		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
