package v1

import (
	"errors"
	"net/http"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling account-related operations
type AuthHandler interface {
	Register(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
	ForgotPassword(ctx *gin.Context)
	ResetPassword(ctx *gin.Context)
}

// authHandler struct holds the services
type authHandler struct {
	authService      users.AuthService
	sessionMaxAgeSec int
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, sessionMaxAgeSec int) AuthHandler {
	return &authHandler{
		authService:      authService,
		sessionMaxAgeSec: sessionMaxAgeSec,
	}
}

// setSessionCookie writes the session cookie the SPA relies on.
func (handler *authHandler) setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, token, handler.sessionMaxAgeSec, "/", "", true, true)
}

// clearSessionCookie removes the session cookie.
func (handler *authHandler) clearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}

// authStatusCode maps auth sentinel errors onto HTTP status codes.
func authStatusCode(err error) int {
	switch {
	case errors.Is(err, users.ErrPasswordTooShort),
		errors.Is(err, users.ErrEmailRegistered),
		errors.Is(err, users.ErrInvalidCode),
		errors.Is(err, users.ErrCodeExpired):
		return http.StatusBadRequest
	case errors.Is(err, users.ErrInvalidCredentials),
		errors.Is(err, users.ErrEmailNotVerified),
		errors.Is(err, users.ErrNotAuthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Register handles the POST request to create an account and send a verification code
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid registration data: " + err.Error()})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	if err := handler.authService.Register(ctx, request.Email, request.Password, request.Name); err != nil {
		ctx.JSON(authStatusCode(err), ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "verification code sent to your email"})
}

// Verify handles the POST request to confirm the emailed verification code
func (handler *authHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid verification data: " + err.Error()})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	_, token, err := handler.authService.Verify(ctx, request.Email, request.Code)
	if err != nil {
		ctx.JSON(authStatusCode(err), ErrorResponse{Message: err.Error()})
		return
	}

	handler.setSessionCookie(ctx, token)
	ctx.JSON(http.StatusOK, InfoResponse{Message: "email verified successfully"})
}

// Login handles the POST request to authenticate and open a session
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid login data: " + err.Error()})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	user, token, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		ctx.JSON(authStatusCode(err), ErrorResponse{Message: err.Error()})
		return
	}

	handler.setSessionCookie(ctx, token)
	ctx.JSON(http.StatusOK, LoginResponse{
		Message: "login successful",
		User:    newUserResponse(user),
	})
}

// Logout handles the POST request to end the current session. The cookie is
// cleared even when the session row cannot be removed.
func (handler *authHandler) Logout(ctx *gin.Context) {
	handler.clearSessionCookie(ctx)

	token, err := ctx.Cookie(SessionCookieName)
	if err == nil && token != "" {
		if err := handler.authService.Logout(ctx, token); err != nil {
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to end session"})
			return
		}
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "logged out"})
}

// Me handles the GET request to describe the authenticated account
func (handler *authHandler) Me(ctx *gin.Context) {
	token, err := ctx.Cookie(SessionCookieName)
	if err != nil || token == "" {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
		return
	}

	user, err := handler.authService.UserByToken(ctx, token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// ForgotPassword handles the POST request to send a password reset code
func (handler *authHandler) ForgotPassword(ctx *gin.Context) {
	var request ForgotPasswordRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "email is required"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	if err := handler.authService.ForgotPassword(ctx, request.Email); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to process request"})
		return
	}

	// Same response whether or not the account exists.
	ctx.JSON(http.StatusOK, InfoResponse{Message: "if an account exists with that email, a reset code has been sent"})
}

// ResetPassword handles the POST request to complete a password reset
func (handler *authHandler) ResetPassword(ctx *gin.Context) {
	var request ResetPasswordRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "email, code, and new password are required"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	if err := handler.authService.ResetPassword(ctx, request.Email, request.Code, request.NewPassword); err != nil {
		ctx.JSON(authStatusCode(err), ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "password reset successfully"})
}
