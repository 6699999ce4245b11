// Package jobs runs periodic background maintenance for the service.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
	"github.com/go-co-op/gocron/v2"
)

// Pruner removes expired records. Implemented by app.MaintenanceService.
type Pruner interface {
	PruneExpired(ctx context.Context) (int64, error)
}

// Scheduler wraps gocron for managing periodic maintenance tasks.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    logger.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(logger logger.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Scheduler{
		scheduler: s,
		logger:    logger,
	}, nil
}

// SchedulePruning registers a periodic job that prunes expired sessions and codes.
func (s *Scheduler) SchedulePruning(interval time.Duration, pruner Pruner) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if _, err := pruner.PruneExpired(ctx); err != nil {
				s.logger.Error("Scheduled pruning failed: ", err)
			}
		}),
		gocron.WithName("prune-expired"),
	)
	if err != nil {
		return fmt.Errorf("failed to create pruning job: %w", err)
	}
	return nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("Starting background scheduler")
	s.scheduler.Start()
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	s.logger.Info("Stopping background scheduler")
	return s.scheduler.Shutdown()
}
