// Package cache holds the in-memory mirror of one entity collection
// fetched from the API. Every resource screen (admins, trainers, blogs)
// keeps one [List] and follows the same discipline: a successful fetch
// replaces the whole snapshot, and the only local mutation permitted
// without a round trip is the optimistic removal of a deleted entity.
package cache

import "sync"

// Entity is anything with a server-assigned unique identifier.
type Entity interface {
	EntityID() string
}

// List is the cached collection of one resource. The zero value is an
// empty, not-yet-loaded list ready for use. All methods are safe for
// concurrent use; the synchronization discipline is last-resync-wins.
type List[T Entity] struct {
	mu     sync.RWMutex
	items  []T
	loaded bool
}

// Items returns a copy of the cached collection in server order.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Loaded reports whether at least one successful fetch has populated the
// cache. A failed fetch leaves it false until the user retriggers a load.
func (l *List[T]) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Replace installs a freshly fetched snapshot, discarding the previous
// one. Whichever resync finishes last wins.
func (l *List[T]) Replace(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = items
	l.loaded = true
}

// RemoveLocal filters the entity with the given id out of the cached
// snapshot without refetching. Called only after the server confirmed a
// delete, so the result matches exactly what the next load would return.
// Unknown ids are ignored.
func (l *List[T]) RemoveLocal(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	filtered := l.items[:0]
	for _, item := range l.items {
		if item.EntityID() != id {
			filtered = append(filtered, item)
		}
	}
	l.items = filtered
}
