package notes

import (
	"context"
)

// NoteService defines operations on a user's notes. Every method scopes its
// work to the owning user; a note id alone never grants access.
type NoteService interface {
	// Create stores a new note for the user and returns the stored note.
	Create(ctx context.Context, userID uint, note *Note) (*Note, error)

	// List retrieves the user's notes considering a query filter when set.
	List(ctx context.Context, userID uint, query *NoteQuery) ([]*Note, error)

	// GetByID retrieves one of the user's notes by its ID.
	GetByID(ctx context.Context, userID, noteID uint) (*Note, error)

	// DeleteByID deletes one of the user's notes by its ID.
	DeleteByID(ctx context.Context, userID, noteID uint) error

	// ExportHTML renders the note's SOAP markdown as a standalone HTML
	// document and returns the document bytes and a suggested filename.
	ExportHTML(ctx context.Context, userID, noteID uint) ([]byte, string, error)
}

// NoteRepository defines the interface for note-related persistence operations
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	ListByUser(ctx context.Context, userID uint, query *NoteQuery) ([]*Note, error)
	GetByID(ctx context.Context, userID, noteID uint) (*Note, error)
	DeleteByID(ctx context.Context, userID, noteID uint) error
}
