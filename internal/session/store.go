package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rs/zerolog"
)

// Store is the registry of live sessions, keyed by session ID. Sessions are
// created on demand and live until the process exits; nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	seed     func(*Session)
	logger   zerolog.Logger
}

// NewStore creates a session store. seed, if non-nil, is run once on every
// newly created session (e.g. to populate demo history).
func NewStore(seed func(*Session), logger zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		seed:     seed,
		logger:   logger.With().Str("component", "session-store").Logger(),
	}
}

// Get returns the session with the given ID, if it exists.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

// Create registers and returns a new session.
func (st *Store) Create() *Session {
	sess := newSession(uuid.New())
	if st.seed != nil {
		st.seed(sess)
	}

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	count := len(st.sessions)
	st.mu.Unlock()

	st.logger.Info().
		Str("session_id", sess.ID.String()).
		Int("active_sessions", count).
		Int("seeded_orders", sess.OrderCount()).
		Msg("session created")

	return sess
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
