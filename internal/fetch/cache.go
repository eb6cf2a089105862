package fetch

import (
	"fmt"
	"sync"
)

// Entry is one cached response body with its fetch time in epoch millis.
type Entry struct {
	Body      []byte `json:"body"`
	FetchedAt int64  `json:"fetchedAt"`
}

// Store abstracts the response cache backend, keyed by full request URL.
type Store interface {
	Get(key string) (Entry, bool)
	Set(key string, e Entry) error
	Range(fn func(key string, e Entry) error) error
}

// MemoryStore is a simple thread-safe map store, the default backend.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Entry)}
}

func (s *MemoryStore) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[key]
	return e, ok
}

func (s *MemoryStore) Set(key string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = e
	return nil
}

func (s *MemoryStore) Range(fn func(key string, e Entry) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, v := range s.data {
		if err := fn(k, v); err != nil {
			return fmt.Errorf("range callback failed: %w", err)
		}
	}
	return nil
}
