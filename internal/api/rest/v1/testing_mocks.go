//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name string) error {
	args := m.Called(ctx, email, password, name)
	return args.Error(0)
}

func (m *MockAuthService) Verify(ctx context.Context, email, code string) (*users.User, string, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*users.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*users.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) UserByToken(ctx context.Context, token string) (*users.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	args := m.Called(ctx, email, code, newPassword)
	return args.Error(0)
}

// MockNoteService is a mock implementation of NoteService
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) Create(ctx context.Context, userID uint, note *notes.Note) (*notes.Note, error) {
	args := m.Called(ctx, userID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notes.Note), args.Error(1)
}

func (m *MockNoteService) List(ctx context.Context, userID uint, query *notes.NoteQuery) ([]*notes.Note, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notes.Note), args.Error(1)
}

func (m *MockNoteService) GetByID(ctx context.Context, userID, noteID uint) (*notes.Note, error) {
	args := m.Called(ctx, userID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notes.Note), args.Error(1)
}

func (m *MockNoteService) DeleteByID(ctx context.Context, userID, noteID uint) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}

func (m *MockNoteService) ExportHTML(ctx context.Context, userID, noteID uint) ([]byte, string, error) {
	args := m.Called(ctx, userID, noteID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// MockDictationService is a mock implementation of DictationService
type MockDictationService struct {
	mock.Mock
}

func (m *MockDictationService) Extract(ctx context.Context, dictationText string) (*dictation.Demographics, error) {
	args := m.Called(ctx, dictationText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dictation.Demographics), args.Error(1)
}

func (m *MockDictationService) GenerateSOAP(ctx context.Context, dictationText string, demographics *dictation.Demographics) (string, error) {
	args := m.Called(ctx, dictationText, demographics)
	return args.String(0), args.Error(1)
}

func (m *MockDictationService) Transcribe(ctx context.Context, filename string, audio io.Reader, size int64) (string, error) {
	args := m.Called(ctx, filename, audio, size)
	return args.String(0), args.Error(1)
}
