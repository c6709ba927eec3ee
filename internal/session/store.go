package session

import (
	"context"
	"sync"
	"time"
)

type item[T any] struct {
	value    T
	lastSeen time.Time
}

// Store keeps one value per session id and evicts values idle for
// longer than the configured duration.
type Store[T any] struct {
	mu      sync.Mutex
	items   map[string]*item[T]
	create  func() T
	onEvict func(T)
	idle    time.Duration
	now     func() time.Time
}

func NewStore[T any](create func() T, idle time.Duration, onEvict func(T)) *Store[T] {
	return &Store[T]{
		items:   make(map[string]*item[T]),
		create:  create,
		onEvict: onEvict,
		idle:    idle,
		now:     time.Now,
	}
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	it.lastSeen = s.now()
	return it.value, true
}

// New builds a value that is not tracked by the store.
func (s *Store[T]) New() T {
	return s.create()
}

func (s *Store[T]) GetOrCreate(id string) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if it, ok := s.items[id]; ok {
		it.lastSeen = s.now()
		return it.value
	}
	it := &item[T]{value: s.create(), lastSeen: s.now()}
	s.items[id] = it
	return it.value
}

func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	it, ok := s.items[id]
	delete(s.items, id)
	s.mu.Unlock()

	if ok && s.onEvict != nil {
		s.onEvict(it.value)
	}
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep evicts every value not seen since now minus the idle duration
// and returns how many were removed.
func (s *Store[T]) Sweep(now time.Time) int {
	var evicted []T

	s.mu.Lock()
	for id, it := range s.items {
		if now.Sub(it.lastSeen) > s.idle {
			evicted = append(evicted, it.value)
			delete(s.items, id)
		}
	}
	s.mu.Unlock()

	if s.onEvict != nil {
		for _, v := range evicted {
			s.onEvict(v)
		}
	}
	return len(evicted)
}

func (s *Store[T]) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			s.Sweep(t)
		}
	}
}
