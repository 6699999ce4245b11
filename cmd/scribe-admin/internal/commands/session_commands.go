package commands

import (
	"context"
	"fmt"

	"github.com/BillBrieferServer/scribe/internal/app"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SessionCommandHandler encapsulates logic for session maintenance via CLI.
type SessionCommandHandler struct {
	maintenance *app.MaintenanceService
	logger      logger.Logger
}

// NewSessionCommandHandler initializes and returns a SessionCommandHandler
// instance with configured logger and maintenance service.
func NewSessionCommandHandler() (*SessionCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := openDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	sessionRepo, err := persistence.NewGormSessionRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	maintenance, err := app.NewMaintenanceService(userRepo, sessionRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance service: %w", err)
	}

	return &SessionCommandHandler{
		maintenance: maintenance,
		logger:      loggerInstance,
	}, nil
}

// PruneSessionsCmd deletes expired sessions and clears expired one-time codes
func (commandHandler *SessionCommandHandler) PruneSessionsCmd(_ *cobra.Command, _ []string) {
	deleted, err := commandHandler.maintenance.PruneExpired(context.Background())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Pruned ", deleted, " expired sessions")
}

// InitSessionCommands registers session maintenance commands
func InitSessionCommands(rootCmd *cobra.Command) error {
	handler, err := NewSessionCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create session command handler %w", err)
	}

	var pruneSessionsCmd = &cobra.Command{
		Use:   "prune-sessions",
		Short: "Delete expired sessions and clear expired codes",
		Run:   handler.PruneSessionsCmd,
	}
	rootCmd.AddCommand(pruneSessionsCmd)

	return nil
}
