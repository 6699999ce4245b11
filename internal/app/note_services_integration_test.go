//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNote(label, soap string) *notes.Note {
	return &notes.Note{
		Label:    &label,
		SOAPNote: &soap,
	}
}

func TestNoteService_Create_ReturnsStoredNote(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, _ := RegisterAndVerify(t, services, "doc@example.com", "longenough", "Doc")

	created, err := services.NoteService.Create(ctx, user.ID, testNote("Follow-up", "# Subjective"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	assert.NotZero(t, created.CreatedAt)
}

func TestNoteService_List_OnlyOwnNotes(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner, _ := RegisterAndVerify(t, services, "owner@example.com", "longenough", "Owner")
	other, _ := RegisterAndVerify(t, services, "other@example.com", "longenough", "Other")

	_, err := services.NoteService.Create(ctx, owner.ID, testNote("Mine", "# S"))
	require.NoError(t, err)

	ownerNotes, err := services.NoteService.List(ctx, owner.ID, nil)
	require.NoError(t, err)
	assert.Len(t, ownerNotes, 1)

	otherNotes, err := services.NoteService.List(ctx, other.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, otherNotes)
}

func TestNoteService_GetByID_WrongUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner, _ := RegisterAndVerify(t, services, "owner@example.com", "longenough", "Owner")
	other, _ := RegisterAndVerify(t, services, "other@example.com", "longenough", "Other")

	created, err := services.NoteService.Create(ctx, owner.ID, testNote("Private", "# S"))
	require.NoError(t, err)

	_, err = services.NoteService.GetByID(ctx, other.ID, created.ID)
	assert.ErrorIs(t, err, notes.ErrNoteNotFound)
}

func TestNoteService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, _ := RegisterAndVerify(t, services, "doc@example.com", "longenough", "Doc")

	created, err := services.NoteService.Create(ctx, user.ID, testNote("Disposable", "# S"))
	require.NoError(t, err)

	require.NoError(t, services.NoteService.DeleteByID(ctx, user.ID, created.ID))

	_, err = services.NoteService.GetByID(ctx, user.ID, created.ID)
	assert.ErrorIs(t, err, notes.ErrNoteNotFound)
}

func TestNoteService_ExportHTML_RendersMarkdown(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, _ := RegisterAndVerify(t, services, "doc@example.com", "longenough", "Doc")

	created, err := services.NoteService.Create(ctx, user.ID,
		testNote("Follow-up", "# Subjective\n\nPatient reports **improvement**."))
	require.NoError(t, err)

	document, filename, err := services.NoteService.ExportHTML(ctx, user.ID, created.ID)
	require.NoError(t, err)

	html := string(document)
	assert.Contains(t, html, "<title>Follow-up</title>")
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>improvement</strong>")
	assert.Contains(t, filename, "note-")
	assert.Contains(t, filename, ".html")
}

func TestNoteService_ExportHTML_EscapesTitle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, _ := RegisterAndVerify(t, services, "doc@example.com", "longenough", "Doc")

	created, err := services.NoteService.Create(ctx, user.ID,
		testNote("<script>alert(1)</script>", "# S"))
	require.NoError(t, err)

	document, _, err := services.NoteService.ExportHTML(ctx, user.ID, created.ID)
	require.NoError(t, err)

	html := string(document)
	assert.NotContains(t, html, "<title><script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
