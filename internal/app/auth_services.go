package app

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength  = 8
	sessionTokenBytes  = 32
	verificationDigits = 6
)

// authService implements the users.AuthService interface
type authService struct {
	userRepo      users.UserRepository
	sessionRepo   users.SessionRepository
	mailer        users.Mailer
	sessionExpire time.Duration
	codeExpire    time.Duration
	logger        logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	userRepo users.UserRepository,
	sessionRepo users.SessionRepository,
	mailer users.Mailer,
	sessionExpire time.Duration,
	codeExpire time.Duration,
	logger logger.Logger,
) (users.AuthService, error) {
	return &authService{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		mailer:        mailer,
		sessionExpire: sessionExpire,
		codeExpire:    codeExpire,
		logger:        logger,
	}, nil
}

// Register creates (or refreshes an unverified) account and emails a verification code.
func (s *authService) Register(ctx context.Context, email, password, name string) error {
	email = normalizeEmail(email)

	if len(password) < minPasswordLength {
		return users.ErrPasswordTooShort
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	codeHash := hashToken(code)
	expires := time.Now().UTC().Add(s.codeExpire)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.EmailVerified:
		return users.ErrEmailRegistered
	case err == nil:
		// Unverified account: replace the pending registration.
		existing.Name = name
		existing.PasswordHash = string(passwordHash)
		existing.VerificationCodeHash = codeHash
		existing.VerificationExpires = &expires
		if err := s.userRepo.UpdateByID(ctx, existing); err != nil {
			return fmt.Errorf("failed to refresh pending registration: %w", err)
		}
	default:
		user := &users.User{
			Email:                email,
			Name:                 name,
			PasswordHash:         string(passwordHash),
			VerificationCodeHash: codeHash,
			VerificationExpires:  &expires,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
	}

	if err := s.mailer.SendVerificationCode(ctx, email, name, code); err != nil {
		s.logger.Error("Failed to send verification email to ", email, ": ", err)
		return users.ErrMailDelivery
	}

	s.logger.Info("Registration pending verification for ", email)
	return nil
}

// Verify checks a verification code, marks the account verified and opens a session.
func (s *authService) Verify(ctx context.Context, email, code string) (*users.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", users.ErrInvalidCode
	}

	if user.VerificationCodeHash == "" || user.VerificationCodeHash != hashToken(code) {
		return nil, "", users.ErrInvalidCode
	}

	if user.VerificationExpires == nil || user.VerificationExpires.Before(time.Now().UTC()) {
		return nil, "", users.ErrCodeExpired
	}

	user.EmailVerified = true
	user.VerificationCodeHash = ""
	user.VerificationExpires = nil
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to mark user verified: %w", err)
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Email verified for user id ", user.ID)
	return user, token, nil
}

// Login authenticates with email and password and opens a session.
func (s *authService) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", users.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", users.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, "", users.ErrEmailNotVerified
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Login for user id ", user.ID)
	return user, token, nil
}

// Logout removes the session identified by the raw token.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteByTokenHash(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// UserByToken resolves the raw session token to its user.
func (s *authService) UserByToken(ctx context.Context, token string) (*users.User, error) {
	if token == "" {
		return nil, users.ErrNotAuthenticated
	}

	session, err := s.sessionRepo.GetByTokenHash(ctx, hashToken(token))
	if err != nil {
		return nil, users.ErrNotAuthenticated
	}

	if session.Expired(time.Now().UTC()) {
		return nil, users.ErrNotAuthenticated
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, users.ErrNotAuthenticated
	}

	return user, nil
}

// ForgotPassword stores and emails a reset code for verified accounts.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil || !user.EmailVerified {
		// Do not reveal whether the account exists.
		return nil
	}

	code, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}
	expires := time.Now().UTC().Add(s.codeExpire)

	user.ResetCodeHash = hashToken(code)
	user.ResetCodeExpires = &expires
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	if err := s.mailer.SendResetCode(ctx, email, user.Name, code); err != nil {
		s.logger.Error("Failed to send reset email to ", email, ": ", err)
	}

	return nil
}

// ResetPassword replaces the password after checking the reset code.
func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)

	if len(newPassword) < minPasswordLength {
		return users.ErrPasswordTooShort
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return users.ErrInvalidCode
	}

	if user.ResetCodeHash == "" || user.ResetCodeHash != hashToken(code) {
		return users.ErrInvalidCode
	}

	if user.ResetCodeExpires == nil || user.ResetCodeExpires.Before(time.Now().UTC()) {
		return users.ErrCodeExpired
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.ResetCodeHash = ""
	user.ResetCodeExpires = nil
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("Password reset for user id ", user.ID)
	return nil
}

// createSession opens a session for the user and returns the raw token.
func (s *authService) createSession(ctx context.Context, userID uint) (string, error) {
	token, err := generateSessionToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &users.Session{
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().UTC().Add(s.sessionExpire),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashToken returns the hex SHA-256 digest of a token or code.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// generateSessionToken returns a URL-safe random token.
func generateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// generateVerificationCode returns a fixed-length numeric code.
func generateVerificationCode() (string, error) {
	var sb strings.Builder
	for i := 0; i < verificationDigits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to read random digit: %w", err)
		}
		sb.WriteString(n.String())
	}
	return sb.String(), nil
}
