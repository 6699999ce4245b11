package app

import (
	"context"
	"io"
	"strings"

	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
	"github.com/BillBrieferServer/scribe/internal/pkg/metrics"
)

// dictationService implements the dictation.DictationService interface
type dictationService struct {
	model       dictation.ModelConnector
	transcriber dictation.Transcriber
	recorder    *metrics.Recorder
	logger      logger.Logger
}

// NewDictationService creates a new dictationService instance. The recorder
// may be nil when metrics are not wanted (tests, CLI).
func NewDictationService(
	model dictation.ModelConnector,
	transcriber dictation.Transcriber,
	recorder *metrics.Recorder,
	logger logger.Logger,
) (dictation.DictationService, error) {
	return &dictationService{
		model:       model,
		transcriber: transcriber,
		recorder:    recorder,
		logger:      logger,
	}, nil
}

func (s *dictationService) countCall(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.recorder.CountModelCall(operation, result)
}

// Extract pulls patient demographics out of a physician dictation.
func (s *dictationService) Extract(ctx context.Context, dictationText string) (*dictation.Demographics, error) {
	if len(strings.TrimSpace(dictationText)) < dictation.MinDictationLength {
		return nil, dictation.ErrDictationTooShort
	}

	demographics, err := s.model.ExtractDemographics(ctx, dictationText)
	s.countCall("extract", err)
	if err != nil {
		s.logger.Error("Demographics extraction failed: ", err)
		return nil, err
	}

	return demographics, nil
}

// GenerateSOAP drafts a SOAP note from a dictation.
func (s *dictationService) GenerateSOAP(ctx context.Context, dictationText string, demographics *dictation.Demographics) (string, error) {
	if len(strings.TrimSpace(dictationText)) < dictation.MinDictationLength {
		return "", dictation.ErrDictationTooShort
	}

	soapNote, err := s.model.GenerateSOAPNote(ctx, dictationText, demographics)
	s.countCall("soap", err)
	if err != nil {
		s.logger.Error("SOAP note generation failed: ", err)
		return "", err
	}

	return soapNote, nil
}

// Transcribe converts an uploaded audio dictation to text.
func (s *dictationService) Transcribe(ctx context.Context, filename string, audio io.Reader, size int64) (string, error) {
	if size < dictation.MinAudioBytes {
		return "", dictation.ErrAudioTooSmall
	}
	if size > dictation.MaxAudioBytes {
		return "", dictation.ErrAudioTooLarge
	}

	text, err := s.transcriber.Transcribe(ctx, filename, audio)
	s.countCall("transcribe", err)
	if err != nil {
		s.logger.Error("Transcription failed: ", err)
		return "", err
	}

	return strings.TrimSpace(text), nil
}
