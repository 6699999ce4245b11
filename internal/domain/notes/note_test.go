//go:build unit
// +build unit

package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNote_Validate(t *testing.T) {
	label := "Follow-up"

	tests := []struct {
		name      string
		note      *Note
		shouldErr bool
	}{
		{
			name:      "valid note with only owner",
			note:      &Note{UserID: 1},
			shouldErr: false,
		},
		{
			name:      "valid note with content",
			note:      &Note{UserID: 1, Label: &label},
			shouldErr: false,
		},
		{
			name:      "missing owner",
			note:      &Note{Label: &label},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.note.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewNoteQuery_Defaults(t *testing.T) {
	query := NewNoteQuery()

	// Zero limit means the full listing is returned.
	assert.Equal(t, 0, query.Limit)
	assert.Equal(t, 0, query.Offset)
	assert.Equal(t, "created_at", query.SortBy)
	assert.Equal(t, "desc", query.SortOrder)
	assert.NoError(t, query.Validate())
}

func TestNoteQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*NoteQuery)
		shouldErr bool
	}{
		{"defaults are valid", func(q *NoteQuery) {}, false},
		{"sort by id", func(q *NoteQuery) { q.SortBy = "id" }, false},
		{"unknown sort column", func(q *NoteQuery) { q.SortBy = "soap_note" }, true},
		{"unknown sort order", func(q *NoteQuery) { q.SortOrder = "sideways" }, true},
		{"negative offset", func(q *NoteQuery) { q.Offset = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := NewNoteQuery()
			tt.mutate(query)

			err := query.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
