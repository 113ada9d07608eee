package router

import (
	"net/http"
	"strings"

	"gourmet-order/internal/handler"
	"gourmet-order/internal/middleware"
	"gourmet-order/internal/session"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	cartHandler *handler.CartHandler,
	ratingHandler *handler.RatingHandler,
	dashboardHandler *handler.DashboardHandler,
	store *session.Store,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Menu routes
	mux.HandleFunc("/api/menu", menuHandler.List)
	mux.HandleFunc("/api/menu/", menuHandler.List)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/cart" || r.URL.Path == "/api/cart/":
			cartHandler.Get(w, r)
		case r.URL.Path == "/api/cart/checkout":
			cartHandler.Checkout(w, r)
		case r.URL.Path == "/api/cart/items":
			cartHandler.AddItem(w, r)
		case strings.HasPrefix(r.URL.Path, "/api/cart/items/"):
			cartHandler.RemoveItem(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	// Register cart routes (both with and without trailing slash)
	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Rating routes
	mux.HandleFunc("/api/ratings", ratingHandler.Submit)
	mux.HandleFunc("/api/ratings/pending", ratingHandler.Pending)

	// Dashboard routes
	mux.HandleFunc("/api/dashboard", dashboardHandler.Report)
	mux.HandleFunc("/api/dashboard/", dashboardHandler.Report)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth -> Session
	var h http.Handler = mux
	h = middleware.Session(store, logger)(h)
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
