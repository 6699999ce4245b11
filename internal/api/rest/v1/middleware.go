package v1

import (
	"net/http"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the raw session token.
const SessionCookieName = "session_token"

const currentUserKey = "currentUser"

// RequestID attaches a request id to every response for log correlation.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.Writer.Header().Set("X-Request-ID", requestID)
		ctx.Set("requestID", requestID)
		ctx.Next()
	}
}

// SessionAuth resolves the session cookie to a user and aborts with 401 when
// the session is missing, unknown or expired.
func SessionAuth(authService users.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookieName)
		if err != nil || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
			return
		}

		user, err := authService.UserByToken(ctx, token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// currentUser returns the user placed in the context by SessionAuth.
func currentUser(ctx *gin.Context) (*users.User, bool) {
	value, exists := ctx.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*users.User)
	return user, ok
}
