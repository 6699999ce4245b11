package notes

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrNoteNotFound is returned when a note does not exist or belongs to
// another user. Handlers treat both cases identically to avoid leaking
// note ownership.
var ErrNoteNotFound = errors.New("note not found")

// Note represents a single encounter note. All content fields are optional;
// a note may hold only a raw dictation, only a finished SOAP note, or both.
type Note struct {
	ID             uint      `validate:"omitempty"`
	UserID         uint      `validate:"required"`
	Label          *string   `validate:"omitempty"`
	PatientAge     *string   `validate:"omitempty"`
	PatientGender  *string   `validate:"omitempty"`
	VisitType      *string   `validate:"omitempty"`
	Specialty      *string   `validate:"omitempty"`
	ChiefComplaint *string   `validate:"omitempty"`
	RawDictation   *string   `validate:"omitempty"`
	SOAPNote       *string   `validate:"omitempty"`
	EncounterTime  *string   `validate:"omitempty"`
	CreatedAt      time.Time `validate:"omitempty"`
}

// Validate for validating Note struct
func (n *Note) Validate() error {
	validate := validator.New()

	err := validate.Struct(n)
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

// NoteQuery represents pagination and sorting options for listing notes.
// A Limit of 0 means unbounded.
type NoteQuery struct {
	Limit     int    `validate:"omitempty,min=1"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=id created_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewNoteQuery creates a NoteQuery that returns all notes, newest first.
func NewNoteQuery() *NoteQuery {
	return &NoteQuery{
		Limit:     0,
		Offset:    0,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// Validate for validating NoteQuery struct
func (q *NoteQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
