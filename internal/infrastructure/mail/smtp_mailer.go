// Package mail delivers account emails over SMTP.
package mail

import (
	"context"
	"fmt"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/pkg/config"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
	gomail "github.com/wneessen/go-mail"
)

// smtpMailer implements the users.Mailer interface using SMTP submission.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger logger.Logger
}

// NewSMTPMailer creates a new SMTP-backed Mailer
func NewSMTPMailer(settings *config.SMTPSettings, logger logger.Logger) (users.Mailer, error) {
	if settings.Host == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}

	client, err := gomail.NewClient(settings.Host,
		gomail.WithPort(settings.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(settings.Username),
		gomail.WithPassword(settings.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &smtpMailer{
		client: client,
		from:   settings.From,
		logger: logger,
	}, nil
}

// SendVerificationCode delivers the signup verification code.
func (m *smtpMailer) SendVerificationCode(ctx context.Context, email, name, code string) error {
	subject := "Verify your Scribe account"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour Scribe verification code is: %s\n\nThis code expires in 15 minutes. If you did not sign up, you can ignore this email.\n",
		name, code,
	)
	return m.send(ctx, email, subject, body)
}

// SendResetCode delivers the password reset code.
func (m *smtpMailer) SendResetCode(ctx context.Context, email, name, code string) error {
	subject := "Reset your Scribe password"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour Scribe password reset code is: %s\n\nThis code expires in 15 minutes. If you did not request a reset, you can ignore this email.\n",
		name, code,
	)
	return m.send(ctx, email, subject, body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("Sent email to ", to)
	return nil
}
