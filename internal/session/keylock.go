package session

import "sync"

// keyedLocks hands out one mutex per user id, so lifecycle operations for
// the same user serialize while different users proceed in parallel.
// Entries are never evicted; the set of users is small and long-lived.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock acquires the user's mutex and returns the matching unlock.
func (k *keyedLocks) lock(userID int64) func() {
	k.mu.Lock()
	l, ok := k.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		k.locks[userID] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
