// Package session keeps per-browser-session state in memory.
package session

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Registry maps a session id to a lazily created value of type T. Entries
// idle for longer than ttl are dropped by Sweep.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
	newFn   func() T
	ttl     time.Duration
	now     func() time.Time
}

func NewRegistry[T any](ttl time.Duration, newFn func() T) *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*entry[T]),
		newFn:   newFn,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the value for id, creating it on first use.
func (r *Registry[T]) Get(id string) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		e = &entry[T]{value: r.newFn()}
		r.entries[id] = e
	}
	e.lastSeen = r.now()
	return e.value
}

func (r *Registry[T]) Delete(id string) {
	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep removes idle entries and returns how many it removed.
func (r *Registry[T]) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// StartCleanup runs Sweep every interval until ctx is done.
func (r *Registry[T]) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Sweep()
			}
		}
	}()
}
