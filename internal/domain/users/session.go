package users

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Session represents an authenticated browser session. The raw token is
// only ever held by the client; the server persists its SHA-256 digest.
type Session struct {
	ID        uint      `validate:"omitempty"`
	UserID    uint      `validate:"required"`
	TokenHash string    `validate:"required"`
	ExpiresAt time.Time `validate:"required"`
	CreatedAt time.Time `validate:"omitempty"`
}

// Validate for validating Session struct
func (s *Session) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Expired reports whether the session has passed its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
