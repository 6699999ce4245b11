package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/pkg/utils"
	"github.com/gin-gonic/gin"
)

// NoteHandler defines the interface for handling note-related operations
type NoteHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ExportByID(ctx *gin.Context)
}

// noteHandler struct holds the services
type noteHandler struct {
	noteService notes.NoteService
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService notes.NoteService) NoteHandler {
	return &noteHandler{
		noteService: noteService,
	}
}

// Create handles the POST request to store a new note
func (handler *noteHandler) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
		return
	}

	var request NoteCreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid note data: " + err.Error()})
		return
	}

	note, err := handler.noteService.Create(ctx, user.ID, request.ToDomain())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to create note"})
		return
	}

	ctx.JSON(http.StatusCreated, newNoteResponse(note))
}

// List handles the GET request to list the caller's notes with optional pagination
func (handler *noteHandler) List(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
		return
	}

	query := notes.NewNoteQuery()

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	noteList, err := handler.noteService.List(ctx, user.ID, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to list notes"})
		return
	}

	var listResponse = []NoteListItemResponse{}
	for _, note := range noteList {
		listResponse = append(listResponse, newNoteListItemResponse(note))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve one note
func (handler *noteHandler) GetByID(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
		return
	}

	noteID := utils.ConvertToUint(ctx.Param("id"))

	note, err := handler.noteService.GetByID(ctx, user.ID, noteID)
	if err != nil {
		if errors.Is(err, notes.ErrNoteNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "note not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to fetch note"})
		return
	}

	ctx.JSON(http.StatusOK, newNoteResponse(note))
}

// DeleteByID handles the DELETE request to remove one note
func (handler *noteHandler) DeleteByID(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
		return
	}

	noteID := utils.ConvertToUint(ctx.Param("id"))

	if err := handler.noteService.DeleteByID(ctx, user.ID, noteID); err != nil {
		if errors.Is(err, notes.ErrNoteNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "note not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to delete note"})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "note deleted"})
}

// ExportByID handles the GET request to download one note rendered as HTML
func (handler *noteHandler) ExportByID(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
		return
	}

	noteID := utils.ConvertToUint(ctx.Param("id"))

	document, filename, err := handler.noteService.ExportHTML(ctx, user.ID, noteID)
	if err != nil {
		if errors.Is(err, notes.ErrNoteNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "note not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to export note"})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", document)
}
