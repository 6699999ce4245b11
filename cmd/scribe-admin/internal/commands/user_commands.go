package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UserCommandHandler encapsulates logic for managing user accounts via CLI.
type UserCommandHandler struct {
	userRepo    users.UserRepository
	sessionRepo users.SessionRepository
	logger      logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler instance
// with configured logger and repositories.
func NewUserCommandHandler() (*UserCommandHandler, error) {
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

	return &UserCommandHandler{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      loggerInstance,
	}, nil
}

// ListUsersCmd prints registered accounts, optionally filtered by verification state
func (commandHandler *UserCommandHandler) ListUsersCmd(cmd *cobra.Command, _ []string) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}

	verifiedFilter, err := cmd.Flags().GetString("verified")
	if err != nil {
		commandHandler.logger.Error("invalid verified flag ", err)
		return
	}

	query := users.NewUserQuery()
	if limit > 0 {
		query.Limit = limit
	}
	switch strings.ToLower(verifiedFilter) {
	case "":
		// no filter
	case "true":
		verified := true
		query.Verified = &verified
	case "false":
		verified := false
		query.Verified = &verified
	default:
		commandHandler.logger.Error("verified flag must be true or false")
		return
	}

	userList, err := commandHandler.userRepo.List(context.Background(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, user := range userList {
		fmt.Printf("%d\t%s\t%s\tverified=%t\t%s\n",
			user.ID, user.Email, user.Name, user.EmailVerified,
			user.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
	}
	commandHandler.logger.Info("Listed ", len(userList), " users")
}

// VerifyUserCmd marks an account as verified without an emailed code
func (commandHandler *UserCommandHandler) VerifyUserCmd(cmd *cobra.Command, _ []string) {
	email, err := cmd.Flags().GetString("email")
	if err != nil || email == "" {
		commandHandler.logger.Error("email flag is required")
		return
	}

	ctx := context.Background()
	user, err := commandHandler.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	user.EmailVerified = true
	user.VerificationCodeHash = ""
	user.VerificationExpires = nil

	if err := commandHandler.userRepo.UpdateByID(ctx, user); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Verified user ", user.Email)
}

// DeleteUserCmd removes an account along with its sessions
func (commandHandler *UserCommandHandler) DeleteUserCmd(cmd *cobra.Command, _ []string) {
	email, err := cmd.Flags().GetString("email")
	if err != nil || email == "" {
		commandHandler.logger.Error("email flag is required")
		return
	}

	ctx := context.Background()
	user, err := commandHandler.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.sessionRepo.DeleteByUserID(ctx, user.ID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.userRepo.DeleteByID(ctx, user.ID); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Deleted user ", user.Email)
}

// InitUserCommands registers user account commands
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	var listUsersCmd = &cobra.Command{
		Use:   "list-users",
		Short: "List registered accounts",
		Run:   handler.ListUsersCmd,
	}
	listUsersCmd.Flags().IntP("limit", "", 100, "Maximum number of accounts to list")
	listUsersCmd.Flags().StringP("verified", "", "", "Filter by verification state (true or false)")
	rootCmd.AddCommand(listUsersCmd)

	var verifyUserCmd = &cobra.Command{
		Use:   "verify-user",
		Short: "Mark an account as verified",
		Run:   handler.VerifyUserCmd,
	}
	verifyUserCmd.Flags().StringP("email", "", "", "Email of the account to verify")
	rootCmd.AddCommand(verifyUserCmd)

	var deleteUserCmd = &cobra.Command{
		Use:   "delete-user",
		Short: "Delete an account and its sessions",
		Run:   handler.DeleteUserCmd,
	}
	deleteUserCmd.Flags().StringP("email", "", "", "Email of the account to delete")
	rootCmd.AddCommand(deleteUserCmd)

	return nil
}
