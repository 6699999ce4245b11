package app

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// noteService implements the notes.NoteService interface
type noteService struct {
	noteRepo notes.NoteRepository
	markdown goldmark.Markdown
	logger   logger.Logger
}

// NewNoteService creates a new noteService instance
func NewNoteService(noteRepo notes.NoteRepository, logger logger.Logger) (notes.NoteService, error) {
	return &noteService{
		noteRepo: noteRepo,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger:   logger,
	}, nil
}

// Create stores a new note for the user and returns the stored note.
func (s *noteService) Create(ctx context.Context, userID uint, note *notes.Note) (*notes.Note, error) {
	note.UserID = userID

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	stored, err := s.noteRepo.GetByID(ctx, userID, note.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back note: %w", err)
	}

	return stored, nil
}

// List retrieves the user's notes considering a query filter when set.
func (s *noteService) List(ctx context.Context, userID uint, query *notes.NoteQuery) ([]*notes.Note, error) {
	if query == nil {
		query = notes.NewNoteQuery()
	}
	return s.noteRepo.ListByUser(ctx, userID, query)
}

// GetByID retrieves one of the user's notes by its ID.
func (s *noteService) GetByID(ctx context.Context, userID, noteID uint) (*notes.Note, error) {
	return s.noteRepo.GetByID(ctx, userID, noteID)
}

// DeleteByID deletes one of the user's notes by its ID.
func (s *noteService) DeleteByID(ctx context.Context, userID, noteID uint) error {
	if err := s.noteRepo.DeleteByID(ctx, userID, noteID); err != nil {
		return err
	}
	s.logger.Info("Deleted note ", noteID, " for user ", userID)
	return nil
}

// ExportHTML renders the note's SOAP markdown as a standalone HTML document.
func (s *noteService) ExportHTML(ctx context.Context, userID, noteID uint) ([]byte, string, error) {
	note, err := s.noteRepo.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, "", err
	}

	var source string
	if note.SOAPNote != nil {
		source = *note.SOAPNote
	}

	title := fmt.Sprintf("Note %d", note.ID)
	if note.Label != nil && *note.Label != "" {
		title = *note.Label
	}

	var body bytes.Buffer
	if err := s.markdown.Convert([]byte(source), &body); err != nil {
		return nil, "", fmt.Errorf("failed to render note markdown: %w", err)
	}

	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")

	filename := fmt.Sprintf("note-%d.html", note.ID)
	return doc.Bytes(), filename, nil
}
