package bot

import "sync"

// SessionStore tracks users who owe a free-text answer. Idle users have no
// entry, so memory is bounded by the number of pending questions.
type SessionStore struct {
	mu       sync.Mutex
	awaiting map[int64]struct{}
}

func NewSessionStore() *SessionStore {
	return &SessionStore{awaiting: make(map[int64]struct{})}
}

func (s *SessionStore) IsAwaiting(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.awaiting[userID]
	return ok
}

func (s *SessionStore) SetAwaiting(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaiting[userID] = struct{}{}
}

// ClearAwaiting removes userID and reports whether it was awaiting.
func (s *SessionStore) ClearAwaiting(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.awaiting[userID]; !ok {
		return false
	}
	delete(s.awaiting, userID)
	return true
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.awaiting)
}

// Reset drops every pending session.
func (s *SessionStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaiting = make(map[int64]struct{})
}
