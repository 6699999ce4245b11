package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// User represents an account registered in the system. Passwords are never
// stored; only the bcrypt hash is kept. Verification and reset codes are
// stored as SHA-256 digests next to their expiry.
type User struct {
	ID                   uint       `validate:"omitempty"`
	Email                string     `validate:"required,email"`
	Name                 string     `validate:"required"`
	PasswordHash         string     `validate:"required"`
	EmailVerified        bool       `validate:"omitempty"`
	VerificationCodeHash string     `validate:"omitempty"`
	VerificationExpires  *time.Time `validate:"omitempty"`
	ResetCodeHash        string     `validate:"omitempty"`
	ResetCodeExpires     *time.Time `validate:"omitempty"`
	CreatedAt            time.Time  `validate:"omitempty"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// UserQuery represents filter and pagination options for listing users
type UserQuery struct {
	Verified  *bool  `validate:"omitempty"`
	Limit     int    `validate:"omitempty,min=1"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=id email name created_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewUserQuery creates a UserQuery with default pagination
func NewUserQuery() *UserQuery {
	return &UserQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
