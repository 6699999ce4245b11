//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence"
	pkgTesting "github.com/BillBrieferServer/scribe/internal/pkg/testing"

	"github.com/stretchr/testify/require"
)

// Code and session lifetimes used by the integration tests
const (
	TestSessionExpire = 30 * 24 * time.Hour
	TestCodeExpire    = 15 * time.Minute
)

// RecordingMailer captures emailed codes so tests can complete the flows.
type RecordingMailer struct {
	mu                sync.Mutex
	VerificationCodes map[string]string
	ResetCodes        map[string]string
}

// NewRecordingMailer creates an empty RecordingMailer
func NewRecordingMailer() *RecordingMailer {
	return &RecordingMailer{
		VerificationCodes: make(map[string]string),
		ResetCodes:        make(map[string]string),
	}
}

// SendVerificationCode records the signup verification code.
func (m *RecordingMailer) SendVerificationCode(_ context.Context, email, _, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VerificationCodes[email] = code
	return nil
}

// SendResetCode records the password reset code.
func (m *RecordingMailer) SendResetCode(_ context.Context, email, _, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetCodes[email] = code
	return nil
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService users.AuthService
	NoteService notes.NoteService
	Maintenance *MaintenanceService
	Mailer      *RecordingMailer
	DBContext   *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := pkgTesting.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	mailer := NewRecordingMailer()

	authService, err := NewAuthService(
		dbContext.UserRepo,
		dbContext.SessionRepo,
		mailer,
		TestSessionExpire,
		TestCodeExpire,
		logger,
	)
	require.NoError(t, err, "Failed to create AuthService")

	noteService, err := NewNoteService(dbContext.NoteRepo, logger)
	require.NoError(t, err, "Failed to create NoteService")

	maintenanceService, err := NewMaintenanceService(dbContext.UserRepo, dbContext.SessionRepo, logger)
	require.NoError(t, err, "Failed to create MaintenanceService")

	return &TestServices{
		AuthService: authService,
		NoteService: noteService,
		Maintenance: maintenanceService,
		Mailer:      mailer,
		DBContext:   dbContext,
	}
}

// RegisterAndVerify walks an account through signup and code verification and
// returns the user and an open session token.
func RegisterAndVerify(t *testing.T, services *TestServices, email, password, name string) (*users.User, string) {
	t.Helper()

	ctx := context.Background()

	err := services.AuthService.Register(ctx, email, password, name)
	require.NoError(t, err, "Failed to register user")

	code, ok := services.Mailer.VerificationCodes[email]
	require.True(t, ok, "Verification code was not delivered")

	user, token, err := services.AuthService.Verify(ctx, email, code)
	require.NoError(t, err, "Failed to verify user")
	require.NotEmpty(t, token)

	return user, token
}
