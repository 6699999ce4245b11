package commands

import (
	"fmt"
	"os"

	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence"
	"github.com/BillBrieferServer/scribe/internal/pkg/config"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
	"gorm.io/gorm"
)

// In commands/common.go
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openDatabase connects to the same database as the API server, resolved
// from CONFIG_PATH (default ./configs/server.yaml).
func openDatabase() (*gorm.DB, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/server.yaml"
	}

	serverConfig, err := config.InitializeServerConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(serverConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return db, nil
}
