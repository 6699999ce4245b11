package users

import (
	"context"
	"time"
)

// AuthService defines the account lifecycle operations exposed over the API.
type AuthService interface {
	// Register creates (or refreshes an unverified) account and emails a
	// verification code. It returns any error encountered during registration.
	Register(ctx context.Context, email, password, name string) error

	// Verify checks a verification code, marks the account verified and opens
	// a session. It returns the user and the raw session token.
	Verify(ctx context.Context, email, code string) (*User, string, error)

	// Login authenticates with email and password and opens a session.
	// It returns the user and the raw session token.
	Login(ctx context.Context, email, password string) (*User, string, error)

	// Logout removes the session identified by the raw token. Unknown tokens
	// are not an error.
	Logout(ctx context.Context, token string) error

	// UserByToken resolves the raw session token to its user. It returns
	// ErrNotAuthenticated for missing or expired sessions.
	UserByToken(ctx context.Context, token string) (*User, error)

	// ForgotPassword stores and emails a reset code for verified accounts.
	// It never reveals whether an account exists.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword replaces the password after checking the reset code.
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// UserRepository defines the interface for user-related persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	UpdateByID(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID uint) error

	// ClearExpiredCodes removes verification and reset codes whose expiry has
	// passed and returns the number of affected users.
	ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

// SessionRepository defines the interface for session-related persistence operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID uint) error

	// DeleteExpired removes sessions whose expiry has passed and returns the
	// number of deleted rows.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Mailer delivers account emails. The current implementation submits over
// SMTP, but this may be replaced with a transactional email provider.
type Mailer interface {
	// SendVerificationCode delivers the signup verification code.
	SendVerificationCode(ctx context.Context, email, name, code string) error

	// SendResetCode delivers the password reset code.
	SendResetCode(ctx context.Context, email, name, code string) error
}
