package connector

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/BillBrieferServer/scribe/internal/pkg/config"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
	openai "github.com/sashabaranov/go-openai"
)

// whisperConnector implements the dictation.Transcriber interface using the
// OpenAI transcription API.
type whisperConnector struct {
	client *openai.Client
	logger logger.Logger
}

// NewWhisperConnector creates a new OpenAI-backed Transcriber
func NewWhisperConnector(settings *config.OpenAISettings, logger logger.Logger) (dictation.Transcriber, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("openai api key is not configured")
	}

	return &whisperConnector{
		client: openai.NewClient(settings.APIKey),
		logger: logger,
	}, nil
}

// Transcribe converts audio to English text. The filename's extension tells
// the API the container format.
func (c *whisperConnector) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	response, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filename,
		Reader:   audio,
		Language: "en",
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	return strings.TrimSpace(response.Text), nil
}
