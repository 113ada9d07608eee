package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gourmet-order/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		providedKey    string
		expectedStatus int
	}{
		{
			name:           "valid key",
			path:           "/api/menu",
			providedKey:    "secret-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing key",
			path:           "/api/menu",
			providedKey:    "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid key",
			path:           "/api/menu",
			providedKey:    "wrong-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "health check skips auth",
			path:           "/health",
			providedKey:    "",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := APIKeyAuth("secret-key", zerolog.Nop())(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set("X-API-Key", tt.providedKey)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestSession_CreatesAndEchoesSessionID(t *testing.T) {
	store := session.NewStore(nil, zerolog.Nop())

	var got *session.Session
	handler := Session(store, zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = SessionFrom(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotNil(t, got)
	assert.Equal(t, got.ID.String(), rec.Header().Get(SessionHeader))
	assert.Equal(t, 1, store.Len())
}

func TestSession_ReusesExistingSession(t *testing.T) {
	store := session.NewStore(nil, zerolog.Nop())
	existing := store.Create()

	var got *session.Session
	handler := Session(store, zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(SessionHeader, existing.ID.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Same(t, existing, got)
	assert.Equal(t, 1, store.Len())
}

func TestSession_MalformedIDStartsNewSession(t *testing.T) {
	store := session.NewStore(nil, zerolog.Nop())

	handler := Session(store, zerolog.Nop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(SessionHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(SessionHeader))
	assert.Equal(t, 1, store.Len())
}

func TestSession_SkipsHealthCheck(t *testing.T) {
	store := session.NewStore(nil, zerolog.Nop())

	handler := Session(store, zerolog.Nop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(SessionHeader))
	assert.Equal(t, 0, store.Len())
}

func TestRecovery(t *testing.T) {
	handler := Recovery(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestLogging_PassesThrough(t *testing.T) {
	handler := Logging(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
