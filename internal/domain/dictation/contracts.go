package dictation

import (
	"context"
	"io"
)

// DictationService defines the model-assisted drafting operations.
type DictationService interface {
	// Extract pulls patient demographics out of a physician dictation.
	// It returns ErrDictationTooShort for inputs under MinDictationLength.
	Extract(ctx context.Context, dictationText string) (*Demographics, error)

	// GenerateSOAP drafts a SOAP note from a dictation, using the provided
	// demographics as patient context when set.
	GenerateSOAP(ctx context.Context, dictationText string, demographics *Demographics) (string, error)

	// Transcribe converts an uploaded audio dictation to text. The filename's
	// extension tells the upstream service the container format.
	Transcribe(ctx context.Context, filename string, audio io.Reader, size int64) (string, error)
}

// ModelConnector is an interface for interacting with a language model
// provider. The current implementation uses the Anthropic Messages API.
type ModelConnector interface {
	// ExtractDemographics asks the model for structured demographics.
	ExtractDemographics(ctx context.Context, dictationText string) (*Demographics, error)

	// GenerateSOAPNote asks the model for a formatted SOAP note.
	GenerateSOAPNote(ctx context.Context, dictationText string, demographics *Demographics) (string, error)
}

// Transcriber is an interface for speech-to-text providers. The current
// implementation uses the OpenAI transcription API.
type Transcriber interface {
	// Transcribe converts audio to English text.
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}
