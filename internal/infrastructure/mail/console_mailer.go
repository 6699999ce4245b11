package mail

import (
	"context"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
)

// consoleMailer logs codes instead of sending email. Used when no SMTP host
// is configured, which is the expected setup for local development.
type consoleMailer struct {
	logger logger.Logger
}

// NewConsoleMailer creates a Mailer that writes codes to the log
func NewConsoleMailer(logger logger.Logger) (users.Mailer, error) {
	return &consoleMailer{logger: logger}, nil
}

// SendVerificationCode logs the signup verification code.
func (m *consoleMailer) SendVerificationCode(_ context.Context, email, _, code string) error {
	m.logger.Info("SMTP not configured; verification code for ", email, ": ", code)
	return nil
}

// SendResetCode logs the password reset code.
func (m *consoleMailer) SendResetCode(_ context.Context, email, _, code string) error {
	m.logger.Info("SMTP not configured; reset code for ", email, ": ", code)
	return nil
}
