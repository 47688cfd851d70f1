// Package lock provides small in-process synchronization helpers.
package lock

import "sync"

// KeyedMutex serializes critical sections per int64 key. Distinct keys never
// block each other. Entries are reference-counted and removed once the last
// holder releases, so the map does not grow with the key space.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[int64]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[int64]*keyedEntry),
	}
}

// Lock blocks until the critical section for key is free and returns the
// matching unlock function. The unlock function must be called exactly once.
func (km *KeyedMutex) Lock(key int64) func() {
	km.mu.Lock()
	entry, ok := km.entries[key]
	if !ok {
		entry = &keyedEntry{}
		km.entries[key] = entry
	}
	entry.refs++
	km.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		km.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(km.entries, key)
		}
		km.mu.Unlock()
	}
}
