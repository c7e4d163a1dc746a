package session

import (
	"sync"

	"github.com/dmitrijs2005/tgpolish/internal/common"
)

// attemptMap is the concurrency-safe store of in-progress handshakes, keyed
// by user id. Mutations of a single attempt happen under the map lock via
// update; callbacks must not block.
type attemptMap struct {
	mu sync.Mutex
	m  map[int64]*attempt
}

func newAttemptMap() *attemptMap {
	return &attemptMap{m: make(map[int64]*attempt)}
}

// swap installs att for userID and returns the previous attempt, if any.
func (s *attemptMap) swap(userID int64, att *attempt) (*attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.m[userID]
	s.m[userID] = att
	return prev, ok
}

// update runs fn on the user's attempt under the lock. Returns
// common.ErrNoActiveAttempt when there is none.
func (s *attemptMap) update(userID int64, fn func(*attempt) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	att, ok := s.m[userID]
	if !ok {
		return common.ErrNoActiveAttempt
	}
	return fn(att)
}

// remove deletes and returns the user's attempt.
func (s *attemptMap) remove(userID int64) (*attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	att, ok := s.m[userID]
	if ok {
		delete(s.m, userID)
	}
	return att, ok
}

// removeIf deletes the user's attempt only when pred accepts it. Used to
// claim an attempt at the end of a handshake without clobbering a newer one.
func (s *attemptMap) removeIf(userID int64, pred func(*attempt) bool) (*attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	att, ok := s.m[userID]
	if !ok || !pred(att) {
		return nil, false
	}
	delete(s.m, userID)
	return att, true
}
