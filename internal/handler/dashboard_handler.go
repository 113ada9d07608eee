package handler

import (
	"net/http"

	"gourmet-order/internal/service"

	"github.com/rs/zerolog"
)

// DashboardHandler handles dashboard requests.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Report handles GET /api/dashboard requests. The report is recomputed from
// the session's order history on every call.
func (h *DashboardHandler) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess, ok := sessionFromRequest(w, r, h.logger)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Report(r.Context(), sess))
}
