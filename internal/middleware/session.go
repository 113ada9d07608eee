package middleware

import (
	"context"
	"net/http"

	"gourmet-order/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionHeader carries the session ID between client and server.
const SessionHeader = "X-Session-ID"

type contextKey string

const sessionContextKey contextKey = "session"

// Session resolves the request's session from the X-Session-ID header and
// stores it in the request context. A missing or unknown ID starts a fresh
// session; the resolved ID is always echoed back in the response header so
// clients can stick to it.
func Session(store *session.Store, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Health checks have no session
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			var sess *session.Session
			if header := r.Header.Get(SessionHeader); header != "" {
				if id, err := uuid.Parse(header); err == nil {
					sess, _ = store.Get(id)
				} else {
					logger.Warn().
						Str("session_header", header).
						Msg("malformed session ID, starting a new session")
				}
			}
			if sess == nil {
				sess = store.Create()
			}

			w.Header().Set(SessionHeader, sess.ID.String())

			next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), sess)))
		})
	}
}

// ContextWithSession returns a context carrying the session.
func ContextWithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SessionFrom extracts the session placed in the context by Session.
func SessionFrom(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	return sess, ok
}
