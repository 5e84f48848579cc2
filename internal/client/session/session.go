// Package session owns the admin client's authenticated identity. The
// current session lives in memory for the lifetime of the process and is
// mirrored to a JSON file so a later process start can pick it up.
package session

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/interiorvision/interior/internal/models"
)

// Store holds the current session in memory and persists it to a file.
// Persistence is best effort: storage failures are swallowed because the
// in-memory copy is authoritative while the process runs.
type Store struct {
	path    string
	mu      sync.Mutex
	current *models.Session
}

// NewStore creates a Store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted session from disk into memory. It returns the
// session and true when a valid session was found, or false otherwise.
// Malformed or partial stored data is discarded along with the file.
func (s *Store) Load() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.current = nil
		return models.Session{}, false
	}
	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil || !sess.Valid() {
		// Corrupt entry: drop it so the next start is clean.
		_ = os.Remove(s.path)
		s.current = nil
		return models.Session{}, false
	}
	s.current = &sess
	return sess, true
}

// Current returns the in-memory session and whether one is present.
func (s *Store) Current() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// Set replaces the current session. The session must be fully populated;
// anything else is ignored to keep the all-or-nothing invariant. The durable
// copy is written before Set returns, so any subsequent reader sees the new
// value.
func (s *Store) Set(sess models.Session) {
	if !sess.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess
	if data, err := json.Marshal(sess); err == nil {
		_ = os.WriteFile(s.path, data, 0o600)
	}
}

// Clear removes the session from memory and disk. Calling it with no session
// present is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	_ = os.Remove(s.path)
}
