// Package token holds the client's access/refresh token pair and notifies
// an optional observer on access-token changes.
package token

import "sync"

// Store keeps at most one access token and one refresh token for the
// lifetime of a client instance. Both tokens are set together except during
// a refresh cycle, which rewrites only the access token.
//
// Concurrent operations that each observe an expired access token may each
// trigger a refresh and overwrite the access token in arbitrary completion
// order (last write wins). Callers needing strict serialization must
// serialize refresh-triggering calls externally.
type Store struct {
	mu       sync.Mutex
	access   string
	refresh  string
	observer func(accessToken string)
}

// NewStore returns an empty Store.
func NewStore() *Store { return &Store{} }

// SetPair overwrites both tokens and notifies the observer with the new
// access token.
func (s *Store) SetPair(access, refresh string) {
	s.mu.Lock()
	s.access = access
	s.refresh = refresh
	fn := s.observer
	s.mu.Unlock()
	if fn != nil {
		fn(access)
	}
}

// SetAccess overwrites only the access token, leaving the refresh token
// untouched. Used by the refresh cycle.
func (s *Store) SetAccess(access string) {
	s.mu.Lock()
	s.access = access
	fn := s.observer
	s.mu.Unlock()
	if fn != nil {
		fn(access)
	}
}

// Clear removes both tokens and notifies the observer with an empty token.
func (s *Store) Clear() {
	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	fn := s.observer
	s.mu.Unlock()
	if fn != nil {
		fn("")
	}
}

// Access returns the stored access token, or "" when absent.
func (s *Store) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// Refresh returns the stored refresh token, or "" when absent.
func (s *Store) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// OnChange registers fn as the single observer invoked synchronously on
// every access-token write. An empty token means the session was cleared.
// Registering a new observer replaces the previous one.
func (s *Store) OnChange(fn func(accessToken string)) {
	s.mu.Lock()
	s.observer = fn
	s.mu.Unlock()
}
