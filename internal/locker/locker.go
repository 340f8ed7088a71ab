// Package locker serializes booking finalization per slot id. Attempts on
// different slots never block each other; attempts on the same slot queue on
// a single mutex that exists only while someone wants it.
package locker

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type SlotLocker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func New() *SlotLocker {
	return &SlotLocker{
		locks: make(map[string]*entry),
	}
}

// WithSlotLock runs fn while holding the exclusive lock for slotID. The lock
// is released on every exit path, including a panic inside fn. The lock is
// non-reentrant: fn must not call WithSlotLock for the same slot id.
func (l *SlotLocker) WithSlotLock(slotID string, fn func() error) error {
	e := l.acquire(slotID)
	e.mu.Lock()

	defer func() {
		e.mu.Unlock()
		l.release(slotID, e)
	}()

	return fn()
}

func (l *SlotLocker) acquire(slotID string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.locks[slotID]
	if !ok {
		e = &entry{}
		l.locks[slotID] = e
	}
	e.refs++

	return e
}

func (l *SlotLocker) release(slotID string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.locks, slotID)
	}
}

// Len reports how many slot locks currently exist. Used to verify that
// uncontended locks are reclaimed.
func (l *SlotLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}
