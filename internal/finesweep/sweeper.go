// Package finesweep keeps the stored late fees of overdue book issues
// current. Reads recompute the fee anyway; the sweep makes the stored
// column usable for reporting and invoicing queries.
package finesweep

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/library/internal/circulation"
	"github.com/GlebRadaev/library/internal/config"
	"github.com/GlebRadaev/library/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=finesweep

type Repo interface {
	FindPenaltyCandidates(ctx context.Context, now time.Time, limit uint32) ([]domain.PenaltyCandidate, error)
	UpdatePenalty(ctx context.Context, issueID int, penalty float64) error
}

const batchLimit = 1000

// inFlight holds the ids of issues a worker is currently updating.
var inFlight sync.Map

type Service struct {
	repo       Repo
	workerPool WorkerPoolI
	limit      uint32
	interval   time.Duration
	now        func() time.Time
}

func New(cfg *config.Config, repo Repo) *Service {
	return &Service{
		repo:       repo,
		workerPool: NewWorkerPool(cfg.SweepWorkers),
		limit:      batchLimit,
		interval:   cfg.SweepInterval,
		now:        time.Now,
	}
}

// Start runs the sweep until ctx is cancelled. It blocks.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("penalty sweeper started", zap.Duration("interval", s.interval))
	defer s.workerPool.Close()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("penalty sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	now := s.now().UTC()
	candidates, err := s.repo.FindPenaltyCandidates(ctx, now, s.limit)
	if err != nil {
		zap.L().Error("can't fetch overdue issues", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, c := range candidates {
		if _, loaded := inFlight.LoadOrStore(c.IssueID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(c.IssueID)
				return s.refresh(ctx, c, now)
			})
			if err != nil {
				inFlight.Delete(c.IssueID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("penalty sweep interrupted", zap.Error(err))
	}
}

func (s *Service) refresh(ctx context.Context, c domain.PenaltyCandidate, now time.Time) error {
	penalty := circulation.Penalty(c.DateReturn, c.ActualReturnDate, c.FineAmount, now)
	if penalty == c.Penalty {
		return nil
	}
	if err := s.repo.UpdatePenalty(ctx, c.IssueID, penalty); err != nil {
		return fmt.Errorf("can't update penalty of %s: %w", c.IssueCode, err)
	}
	zap.L().Debug("penalty updated", zap.String("issue_code", c.IssueCode), zap.Float64("penalty", penalty))
	return nil
}
