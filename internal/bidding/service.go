package bidding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"freelance_bidding/internal/lib/logger/sl"
	"freelance_bidding/internal/metrics"
	"freelance_bidding/internal/models/bids"
	"freelance_bidding/internal/models/project"

	"golang.org/x/sync/singleflight"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrBidExists       = errors.New("a bid for this project already exists")
)

type BidRepository interface {
	ListAll() []bids.Bid
	AppendIf(bid bids.Bid, guard func([]bids.Bid) error) error
	Replace(bidId int64, updater func(bids.Bid) (bids.Bid, error)) (bids.Bid, bool, error)
}

type Service struct {
	log      *slog.Logger
	repo     BidRepository
	projects []project.Project
	delay    time.Duration
	now      func() time.Time

	inflight singleflight.Group

	idMu   sync.Mutex
	lastId int64
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New takes the catalog as loaded at startup. delay is the simulated latency before a bid is stored.
func New(log *slog.Logger, repo BidRepository, projects []project.Project, delay time.Duration, opts ...Option) *Service {
	s := &Service{
		log:      log,
		repo:     repo,
		projects: projects,
		delay:    delay,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, b := range repo.ListAll() {
		if b.Id > s.lastId {
			s.lastId = b.Id
		}
	}

	return s
}

func (s *Service) Projects() []project.Project {
	result := make([]project.Project, len(s.projects))
	copy(result, s.projects)
	return result
}

func (s *Service) Bids() []bids.Bid {
	return s.repo.ListAll()
}

// Submit validates and stores a new pending bid. Concurrent submissions for
// the same project share one placement and receive the same bid.
func (s *Service) Submit(ctx context.Context, projectId int, in bids.Input) (bids.Bid, error) {
	const op = "bidding.Submit"
	log := s.log.With(slog.String("op", op), slog.Int("project_id", projectId))

	if errs := bids.Validate(in); len(errs) > 0 {
		metrics.BidsSubmittedTotal.WithLabelValues("invalid").Inc()
		return bids.Bid{}, &bids.ValidationError{Errors: errs}
	}

	if _, ok := project.FindById(s.projects, projectId); !ok {
		metrics.BidsSubmittedTotal.WithLabelValues("unknown_project").Inc()
		return bids.Bid{}, fmt.Errorf("%s: %w: %d", op, ErrProjectNotFound, projectId)
	}

	if _, ok := bids.FindForProject(projectId, s.repo.ListAll()); ok {
		metrics.BidsSubmittedTotal.WithLabelValues("duplicate").Inc()
		return bids.Bid{}, fmt.Errorf("%s: %w", op, ErrBidExists)
	}

	ch := s.inflight.DoChan(strconv.Itoa(projectId), func() (any, error) {
		return s.place(ctx, projectId, in)
	})

	// place honours the leader's ctx, so a cancelled leader returns before anything is appended.
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		metrics.BidsSubmittedTotal.WithLabelValues("cancelled").Inc()
		log.Info("bid submission cancelled")
		return bids.Bid{}, ctx.Err()
	}
	if res.Err != nil {
		switch {
		case errors.Is(res.Err, context.Canceled), errors.Is(res.Err, context.DeadlineExceeded):
			metrics.BidsSubmittedTotal.WithLabelValues("cancelled").Inc()
			log.Info("bid submission cancelled")
			return bids.Bid{}, res.Err
		case errors.Is(res.Err, ErrBidExists):
			metrics.BidsSubmittedTotal.WithLabelValues("duplicate").Inc()
		default:
			metrics.BidsSubmittedTotal.WithLabelValues("error").Inc()
			log.Error("failed to store bid", sl.Err(res.Err))
		}
		return bids.Bid{}, fmt.Errorf("%s: %w", op, res.Err)
	}

	bid := res.Val.(bids.Bid)
	metrics.BidsSubmittedTotal.WithLabelValues("accepted").Inc()
	log.Info("bid submitted", slog.Int64("bid_id", bid.Id), slog.Bool("shared", res.Shared))
	return bid, nil
}

func (s *Service) place(ctx context.Context, projectId int, in bids.Input) (bids.Bid, error) {
	if err := s.wait(ctx); err != nil {
		return bids.Bid{}, err
	}

	bid := bids.NewPending(s.nextId(), projectId, in, s.now())

	err := s.repo.AppendIf(bid, func(existing []bids.Bid) error {
		if _, ok := bids.FindForProject(projectId, existing); ok {
			return ErrBidExists
		}
		return nil
	})
	if err != nil {
		return bids.Bid{}, err
	}

	return bid, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// nextId derives ids from the clock in milliseconds, never repeating or going backwards.
func (s *Service) nextId() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastId {
		id = s.lastId + 1
	}
	s.lastId = id
	return id
}

// UpdateStatus applies a lifecycle transition. An unknown bid id is a no-op with found=false.
func (s *Service) UpdateStatus(bidId int64, to bids.Status) (bids.Bid, bool, error) {
	const op = "bidding.UpdateStatus"
	log := s.log.With(slog.String("op", op), slog.Int64("bid_id", bidId))

	bid, found, err := s.repo.Replace(bidId, bids.Transition(to))
	if err != nil {
		return bid, found, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		log.Debug("status update for unknown bid ignored")
		return bids.Bid{}, false, nil
	}

	metrics.BidStatusTransitionsTotal.WithLabelValues(string(to)).Inc()
	log.Info("bid status changed", slog.String("status", string(to)))
	return bid, true, nil
}
