package users

import "errors"

// Sentinel errors returned by auth services so HTTP handlers can map them
// onto status codes without parsing message strings.
var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("please verify your email first")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUserNotFound       = errors.New("user not found")
	ErrMailDelivery       = errors.New("failed to send email")
)
