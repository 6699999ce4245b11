// Package main is the entry point for the scribe-admin application.
// It initializes the root command, registers the user and session
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/BillBrieferServer/scribe/cmd/scribe-admin/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "scribe-admin",
		Short: "Administrative operations for the scribe service",
		Long: `scribe-admin is a command-line tool for operating a scribe deployment.
It lists and manages user accounts and prunes expired sessions and one-time codes.

The database is resolved from the same configuration file as the API server.
Set CONFIG_PATH to point at it; the default is ./configs/server.yaml.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register user account commands
	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	// Register session commands
	if err := commands.InitSessionCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize session commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
