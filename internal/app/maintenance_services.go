package app

import (
	"context"
	"fmt"
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
)

// MaintenanceService removes expired sessions and stale one-time codes.
// It runs on a schedule but is also invoked directly by the admin CLI.
type MaintenanceService struct {
	userRepo    users.UserRepository
	sessionRepo users.SessionRepository
	logger      logger.Logger
}

// NewMaintenanceService creates a new MaintenanceService instance
func NewMaintenanceService(
	userRepo users.UserRepository,
	sessionRepo users.SessionRepository,
	logger logger.Logger,
) (*MaintenanceService, error) {
	return &MaintenanceService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}, nil
}

// PruneExpired deletes expired sessions and clears expired verification and
// reset codes. It returns the number of deleted sessions.
func (s *MaintenanceService) PruneExpired(ctx context.Context) (int64, error) {
	now := time.Now().UTC()

	sessions, err := s.sessionRepo.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}

	codes, err := s.userRepo.ClearExpiredCodes(ctx, now)
	if err != nil {
		return sessions, fmt.Errorf("failed to clear expired codes: %w", err)
	}

	if sessions > 0 || codes > 0 {
		s.logger.Info("Pruned ", sessions, " expired sessions, cleared codes for ", codes, " users")
	}

	return sessions, nil
}
