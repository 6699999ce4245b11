//go:build unit
// +build unit

package app

import (
	"context"
	"io"

	"github.com/BillBrieferServer/scribe/internal/domain/dictation"

	"github.com/stretchr/testify/mock"
)

// MockModelConnector is a mock implementation of dictation.ModelConnector
type MockModelConnector struct {
	mock.Mock
}

func (m *MockModelConnector) ExtractDemographics(ctx context.Context, dictationText string) (*dictation.Demographics, error) {
	args := m.Called(ctx, dictationText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dictation.Demographics), args.Error(1)
}

func (m *MockModelConnector) GenerateSOAPNote(ctx context.Context, dictationText string, demographics *dictation.Demographics) (string, error) {
	args := m.Called(ctx, dictationText, demographics)
	return args.String(0), args.Error(1)
}

// MockTranscriber is a mock implementation of dictation.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	args := m.Called(ctx, filename, audio)
	return args.String(0), args.Error(1)
}
