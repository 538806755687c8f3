package bidstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"freelance_bidding/internal/lib/logger/sl"
	"freelance_bidding/internal/models/bids"
	"freelance_bidding/internal/storage"
)

// Key is the single store key holding the whole bid collection.
const Key = "freelancer-bids"

// Repository is the only owner of the persisted bid collection. Every
// mutation rewrites the whole collection under Key.
type Repository struct {
	mu    sync.Mutex
	log   *slog.Logger
	store storage.Store
}

func New(log *slog.Logger, store storage.Store) *Repository {
	return &Repository{log: log, store: store}
}

// ListAll never fails: a missing key, a broken store or malformed data all read as no bids.
func (r *Repository) ListAll() []bids.Bid {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *Repository) Append(bid bids.Bid) error {
	return r.AppendIf(bid, nil)
}

// AppendIf runs guard against the current collection and appends only when it returns nil.
// Both steps happen under the same lock.
func (r *Repository) AppendIf(bid bids.Bid, guard func([]bids.Bid) error) error {
	const op = "storage.bidstore.Append"

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.load()
	if guard != nil {
		if err := guard(current); err != nil {
			return err
		}
	}

	if err := r.save(append(current, bid)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Replace rewrites the first bid with the given id. An unknown id is a no-op
// reported through found. An updater error aborts without writing.
func (r *Repository) Replace(bidId int64, updater func(bids.Bid) (bids.Bid, error)) (bids.Bid, bool, error) {
	const op = "storage.bidstore.Replace"

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.load()
	for i, b := range current {
		if b.Id != bidId {
			continue
		}

		updated, err := updater(b)
		if err != nil {
			return b, true, err
		}
		current[i] = updated

		if err := r.save(current); err != nil {
			return b, true, fmt.Errorf("%s: %w", op, err)
		}
		return updated, true, nil
	}

	return bids.Bid{}, false, nil
}

func (r *Repository) load() []bids.Bid {
	const op = "storage.bidstore.load"
	log := r.log.With(slog.String("op", op))

	result := make([]bids.Bid, 0)

	raw, err := r.store.Get(Key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			log.Warn("failed to read bids, treating as empty", sl.Err(err))
		}
		return result
	}

	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Warn("malformed bid collection, treating as empty", sl.Err(err))
		return make([]bids.Bid, 0)
	}

	for i := range result {
		if result[i].Status == "" {
			result[i].Status = bids.StatusPending
		}
	}

	return result
}

func (r *Repository) save(all []bids.Bid) error {
	data, err := json.Marshal(all)
	if err != nil {
		return err
	}
	return r.store.Set(Key, string(data))
}
