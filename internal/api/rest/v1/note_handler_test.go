//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func authedTestContext(w *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(currentUserKey, &users.User{ID: 7, Email: "doc@example.com", Name: "Doc", EmailVerified: true})
	return c
}

func TestNoteHandler_Create_Success(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	stored := &notes.Note{
		ID:       42,
		UserID:   7,
		Label:    strPtr("Follow-up"),
		SOAPNote: strPtr("# SOAP"),
	}

	requestBody := `{"label": "Follow-up", "soap_note": "# SOAP"}`

	mockNoteService.
		On("Create", mock.Anything, uint(7), mock.AnythingOfType("*notes.Note")).
		Return(stored, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/notes", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c := authedTestContext(w, req)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Follow-up")
	mockNoteService.AssertExpectations(t)
}

func TestNoteHandler_Create_Unauthenticated(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/notes", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockNoteService.AssertNotCalled(t, "Create")
}

func TestNoteHandler_List_Success(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	noteList := []*notes.Note{
		{ID: 1, UserID: 7, Label: strPtr("First"), CreatedAt: time.Now()},
		{ID: 2, UserID: 7, Label: strPtr("Second"), CreatedAt: time.Now()},
	}

	mockNoteService.
		On("List", mock.Anything, uint(7), mock.Anything).
		Return(noteList, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/notes", nil)

	c := authedTestContext(w, req)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "First")
	assert.Contains(t, w.Body.String(), "Second")
	mockNoteService.AssertExpectations(t)
}

func TestNoteHandler_List_DefaultIsUnbounded(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	// Without query parameters the full listing is requested, newest first.
	mockNoteService.
		On("List", mock.Anything, uint(7), mock.MatchedBy(func(query *notes.NoteQuery) bool {
			return query.Limit == 0 && query.Offset == 0 &&
				query.SortBy == "created_at" && query.SortOrder == "desc"
		})).
		Return([]*notes.Note{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/notes", nil)

	c := authedTestContext(w, req)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockNoteService.AssertExpectations(t)
}

func TestNoteHandler_List_ExplicitLimit(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	mockNoteService.
		On("List", mock.Anything, uint(7), mock.MatchedBy(func(query *notes.NoteQuery) bool {
			return query.Limit == 2 && query.Offset == 4
		})).
		Return([]*notes.Note{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/notes?limit=2&offset=4", nil)

	c := authedTestContext(w, req)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockNoteService.AssertExpectations(t)
}

func TestNoteHandler_List_EmptyReturnsArray(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	mockNoteService.
		On("List", mock.Anything, uint(7), mock.Anything).
		Return([]*notes.Note{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/notes", nil)

	c := authedTestContext(w, req)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	mockNoteService.AssertExpectations(t)
}

func TestNoteHandler_GetByID_Success(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	note := &notes.Note{ID: 42, UserID: 7, Label: strPtr("Follow-up"), CreatedAt: time.Now()}

	mockNoteService.
		On("GetByID", mock.Anything, uint(7), uint(42)).
		Return(note, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/notes/42", nil)

	c := authedTestContext(w, req)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Follow-up")
	mockNoteService.AssertExpectations(t)
}

func TestNoteHandler_GetByID_NotFound(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	mockNoteService.
		On("GetByID", mock.Anything, uint(7), uint(42)).
		Return(nil, notes.ErrNoteNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/notes/42", nil)

	c := authedTestContext(w, req)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockNoteService.AssertExpectations(t)
}

func TestNoteHandler_DeleteByID_Success(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	mockNoteService.
		On("DeleteByID", mock.Anything, uint(7), uint(42)).
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/notes/42", nil)

	c := authedTestContext(w, req)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	handler.DeleteByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "note deleted")
	mockNoteService.AssertExpectations(t)
}

func TestNoteHandler_DeleteByID_NotFound(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	mockNoteService.
		On("DeleteByID", mock.Anything, uint(7), uint(42)).
		Return(notes.ErrNoteNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/notes/42", nil)

	c := authedTestContext(w, req)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockNoteService.AssertExpectations(t)
}

func TestNoteHandler_ExportByID_Success(t *testing.T) {
	mockNoteService := new(MockNoteService)
	handler := NewNoteHandler(mockNoteService)

	document := []byte("<!DOCTYPE html><html><body><h1>SOAP</h1></body></html>")

	mockNoteService.
		On("ExportHTML", mock.Anything, uint(7), uint(42)).
		Return(document, "note-42.html", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/notes/42/export", nil)

	c := authedTestContext(w, req)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	handler.ExportByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "note-42.html")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h1>SOAP</h1>")
	mockNoteService.AssertExpectations(t)
}
