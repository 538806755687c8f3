package ratingstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"freelance_bidding/internal/lib/logger/sl"
	"freelance_bidding/internal/models/profile"
	"freelance_bidding/internal/storage"
)

type Store struct {
	mu    sync.Mutex
	log   *slog.Logger
	store storage.Store
}

func New(log *slog.Logger, store storage.Store) *Store {
	return &Store{log: log, store: store}
}

func Key(freelancerId int) string {
	return fmt.Sprintf("freelancer-%d-rating", freelancerId)
}

// Get returns the persisted rating, or seed when nothing usable is stored.
func (s *Store) Get(freelancerId int, seed profile.Rating) profile.Rating {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(freelancerId, seed)
}

func (s *Store) Add(freelancerId int, seed profile.Rating, vote int) (profile.Rating, error) {
	const op = "storage.ratingstore.Add"

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.load(freelancerId, seed).Add(vote)

	data, err := json.Marshal(updated)
	if err != nil {
		return profile.Rating{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.store.Set(Key(freelancerId), string(data)); err != nil {
		return profile.Rating{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Store) load(freelancerId int, seed profile.Rating) profile.Rating {
	const op = "storage.ratingstore.load"

	raw, err := s.store.Get(Key(freelancerId))
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.log.Warn("failed to read rating", slog.String("op", op), sl.Err(err))
		}
		return seed
	}

	var r profile.Rating
	if err := json.Unmarshal([]byte(raw), &r); err != nil || r.Count < 0 {
		s.log.Warn("malformed rating, using seed", slog.String("op", op))
		return seed
	}
	return r
}
