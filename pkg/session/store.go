package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the process-wide session map. It is constructed once at startup
// and handed to whoever needs it; there is no package-level global. The store
// mutex guards only the map itself, each session guards its own record, so
// traffic on different keys never contends.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate resolves a session for an inbound message. An empty id gets a
// freshly generated one. A known id is touched (last-activity bumped and the
// interaction counter incremented); an unknown id gets a new empty session.
// There is no separate touch operation.
func (st *Store) GetOrCreate(sessionID, userID string) *Session {
	now := time.Now()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	st.mu.Lock()
	s, ok := st.sessions[sessionID]
	if !ok {
		s = newSession(sessionID, userID, now)
		st.sessions[sessionID] = s
		st.mu.Unlock()
		return s
	}
	st.mu.Unlock()

	s.touch(now)
	return s
}

// Get is a read-only lookup: it does not bump last-activity or counters.
func (st *Store) Get(sessionID string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[sessionID]
	return s, ok
}

// Delete removes a session and reports whether it existed.
func (st *Store) Delete(sessionID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[sessionID]; !ok {
		return false
	}
	delete(st.sessions, sessionID)
	return true
}

// Len returns the current number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Cleanup removes every session whose last activity precedes now-maxAge and
// returns how many were removed. It scans a snapshot of the map rather than
// holding the store lock across the sweep, so ordinary traffic keeps flowing
// while it runs. A session touched between the scan and the delete survives.
func (st *Store) Cleanup(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	st.mu.RLock()
	candidates := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		candidates = append(candidates, s)
	}
	st.mu.RUnlock()

	removed := 0
	for _, s := range candidates {
		if !s.lastActiveAt().Before(cutoff) {
			continue
		}
		st.mu.Lock()
		// Re-check under the write lock: a concurrent message may have
		// touched the session since the snapshot.
		if cur, ok := st.sessions[s.id]; ok && cur.lastActiveAt().Before(cutoff) {
			delete(st.sessions, s.id)
			removed++
		}
		st.mu.Unlock()
	}
	return removed
}
