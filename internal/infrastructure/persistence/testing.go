//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence/models"
	"github.com/BillBrieferServer/scribe/internal/pkg/config"
	pkgTesting "github.com/BillBrieferServer/scribe/internal/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	UserRepo    users.UserRepository
	SessionRepo users.SessionRepository
	NoteRepo    notes.NoteRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		if err := CloseDB(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.UserModel{}, &models.SessionModel{}, &models.NoteModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := pkgTesting.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	sessionRepo, err := NewGormSessionRepository(db, logger)
	require.NoError(t, err, "Failed to create session repository")

	noteRepo, err := NewGormNoteRepository(db, logger)
	require.NoError(t, err, "Failed to create note repository")

	return &TestContext{
		DB:          db,
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		NoteRepo:    noteRepo,
	}
}

// CreateTestUser creates an unverified test user with default values
func CreateTestUser(t *testing.T, email string) *users.User {
	t.Helper()

	expires := time.Now().UTC().Add(15 * time.Minute)
	return &users.User{
		Email:                email,
		Name:                 "Test User",
		PasswordHash:         "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
		VerificationCodeHash: "code-hash",
		VerificationExpires:  &expires,
	}
}

// CreateTestSession creates a session for the user expiring in an hour
func CreateTestSession(t *testing.T, userID uint) *users.Session {
	t.Helper()

	return &users.Session{
		UserID:    userID,
		TokenHash: uuid.NewString(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
}

// CreateTestNote creates a note with a label and SOAP body for the user
func CreateTestNote(t *testing.T, userID uint, label string) *notes.Note {
	t.Helper()

	soap := "# Subjective\n\nPatient reports feeling well."
	return &notes.Note{
		UserID:   userID,
		Label:    &label,
		SOAPNote: &soap,
	}
}
