// cmd/scribe-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	v1 "github.com/BillBrieferServer/scribe/internal/api/rest/v1"
	"github.com/BillBrieferServer/scribe/internal/app"
	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/connector"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/jobs"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/mail"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence/models"
	"github.com/BillBrieferServer/scribe/internal/pkg/config"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
	"github.com/BillBrieferServer/scribe/internal/pkg/metrics"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/server.yaml"
	}

	serverConfig, err := config.InitializeServerConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&serverConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(serverConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Start background maintenance
	scheduler, err := startScheduler(serverConfig, deps.maintenance, log)
	if err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Error("Failed to stop scheduler: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(serverConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	authService      users.AuthService
	noteService      notes.NoteService
	dictationService dictation.DictationService
	maintenance      *app.MaintenanceService
	recorder         *metrics.Recorder
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.ServerConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.UserModel{}, &models.SessionModel{}, &models.NoteModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	noteRepo, err := persistence.NewGormNoteRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create note repository: %w", err)
	}

	// Initialize outbound connectors
	mailer, err := initializeMailer(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	modelConnector, err := connector.NewAnthropicConnector(&cfg.Anthropic, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create model connector: %w", err)
	}

	transcriber, err := connector.NewWhisperConnector(&cfg.OpenAI, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcriber: %w", err)
	}

	recorder := metrics.NewRecorder(nil)

	// Initialize services
	authService, err := app.NewAuthService(
		userRepo, sessionRepo, mailer,
		time.Duration(cfg.Auth.SessionExpireDays)*24*time.Hour,
		time.Duration(cfg.Auth.CodeExpireMinutes)*time.Minute,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	noteService, err := app.NewNoteService(noteRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create note service: %w", err)
	}

	dictationService, err := app.NewDictationService(modelConnector, transcriber, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dictation service: %w", err)
	}

	maintenanceService, err := app.NewMaintenanceService(userRepo, sessionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		authService:      authService,
		noteService:      noteService,
		dictationService: dictationService,
		maintenance:      maintenanceService,
		recorder:         recorder,
	}, nil
}

// initializeMailer selects SMTP delivery when a host is configured and falls
// back to logging codes otherwise.
func initializeMailer(cfg *config.ServerConfig, log logger.Logger) (users.Mailer, error) {
	if cfg.SMTP.Host == "" {
		log.Warn("SMTP host not configured, verification codes will be logged")
		return mail.NewConsoleMailer(log)
	}
	return mail.NewSMTPMailer(&cfg.SMTP, log)
}

// startScheduler wires the periodic pruning of expired sessions and codes
func startScheduler(cfg *config.ServerConfig, maintenance *app.MaintenanceService, log logger.Logger) (*jobs.Scheduler, error) {
	scheduler, err := jobs.NewScheduler(log)
	if err != nil {
		return nil, err
	}

	interval := time.Duration(cfg.Auth.PruneIntervalHours) * time.Hour
	if err := scheduler.SchedulePruning(interval, maintenance); err != nil {
		return nil, err
	}

	scheduler.Start()
	return scheduler, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.ServerConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(v1.RequestID())
	r.Use(deps.recorder.Middleware())

	// Operational endpoints
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(deps.recorder.Handler()))

	// Setup API routes
	sessionMaxAgeSec := cfg.Auth.SessionExpireDays * 24 * 60 * 60
	v1.SetupRoutes(r, deps.authService, deps.noteService, deps.dictationService, sessionMaxAgeSec)

	// Serve the single-page frontend; unknown non-API paths fall back to index.html
	setupStaticRoutes(r, cfg.StaticDir)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// setupStaticRoutes serves the SPA assets and routes unknown paths to
// index.html so client-side routing keeps working after a page reload.
func setupStaticRoutes(r *gin.Engine, staticDir string) {
	if staticDir == "" {
		return
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	})
}
