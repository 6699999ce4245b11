package dictation

import "errors"

// Input bounds carried by the dictation endpoints.
const (
	// MinDictationLength is the minimum trimmed dictation length accepted by
	// the extraction and SOAP generation operations.
	MinDictationLength = 10

	// MinAudioBytes is the smallest audio upload accepted for transcription.
	MinAudioBytes = 100

	// MaxAudioBytes is the largest audio upload accepted for transcription.
	MaxAudioBytes = 25 * 1024 * 1024
)

// Sentinel errors for input validation and upstream model failures.
var (
	ErrDictationTooShort = errors.New("dictation too short")
	ErrAudioTooSmall     = errors.New("audio file too small")
	ErrAudioTooLarge     = errors.New("audio file too large")
	ErrModelResponse     = errors.New("model returned an unusable response")
)

// Demographics holds patient and visit facts extracted from a dictation.
// Nil fields were not mentioned or could not be determined.
type Demographics struct {
	Gender         *string
	Age            *string
	VisitType      *string
	Specialty      *string
	ChiefComplaint *string
	Confidence     float64
}
