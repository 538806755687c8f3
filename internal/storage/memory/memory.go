package memory

import (
	"fmt"
	"sync"

	"freelance_bidding/internal/storage"
)

type Storage struct {
	mu   sync.RWMutex
	data map[string]string
}

func New() *Storage {
	return &Storage{data: make(map[string]string)}
}

func (s *Storage) Get(key string) (string, error) {
	const op = "storage.memory.Get"

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, storage.ErrKeyNotFound)
	}
	return v, nil
}

func (s *Storage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}
