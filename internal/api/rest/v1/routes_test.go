//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockNoteService := new(MockNoteService)
	mockDictationService := new(MockDictationService)

	r := gin.Default()

	mockAuthService.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockAuthService.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, "", users.ErrInvalidCredentials)

	SetupRoutes(r, mockAuthService, mockNoteService, mockDictationService, 3600)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/auth/register"},
		{"POST", "/api/auth/login"},
		{"POST", "/api/auth/logout"},
		{"GET", "/api/auth/me"},
		{"GET", "/api/notes"},
		{"POST", "/api/generate/extract"},
		{"POST", "/api/generate/soap"},
		{"POST", "/api/transcribe"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

// TestSetupRoutes_ProtectedRoutesRequireSession verifies the session middleware
// guards the note and generation routes.
func TestSetupRoutes_ProtectedRoutesRequireSession(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockNoteService := new(MockNoteService)
	mockDictationService := new(MockDictationService)

	r := gin.Default()
	SetupRoutes(r, mockAuthService, mockNoteService, mockDictationService, 3600)

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/api/notes"},
		{"POST", "/api/notes"},
		{"POST", "/api/generate/extract"},
		{"POST", "/api/generate/soap"},
		{"POST", "/api/transcribe"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "Route should require a session")
		})
	}

	mockNoteService.AssertNotCalled(t, "List")
	mockDictationService.AssertNotCalled(t, "Extract")
}

// TestSessionAuth_ValidCookiePopulatesUser verifies the middleware resolves a
// cookie to the current user.
func TestSessionAuth_ValidCookiePopulatesUser(t *testing.T) {
	mockAuthService := new(MockAuthService)
	user := &users.User{ID: 7, Email: "doc@example.com", Name: "Doc", EmailVerified: true}

	mockAuthService.
		On("UserByToken", mock.Anything, "raw-session-token").
		Return(user, nil)

	r := gin.New()
	r.GET("/whoami", SessionAuth(mockAuthService), func(c *gin.Context) {
		current, ok := currentUser(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": current.Email})
	})

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "raw-session-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "doc@example.com")
	mockAuthService.AssertExpectations(t)
}

// TestRequestID_GeneratedWhenMissing verifies a request id header is added.
func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

// TestRequestID_PreservedWhenPresent verifies an incoming id is echoed back.
func TestRequestID_PreservedWhenPresent(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
