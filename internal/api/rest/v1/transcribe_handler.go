package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/gin-gonic/gin"
)

// TranscribeHandler defines the interface for handling audio transcription
type TranscribeHandler interface {
	Transcribe(ctx *gin.Context)
}

// transcribeHandler struct holds the services
type transcribeHandler struct {
	dictationService dictation.DictationService
}

// NewTranscribeHandler creates a new TranscribeHandler
func NewTranscribeHandler(dictationService dictation.DictationService) TranscribeHandler {
	return &transcribeHandler{
		dictationService: dictationService,
	}
}

// audioExtension maps the upload's Content-Type to a filename extension the
// transcription API understands. Browser recordings default to webm.
func audioExtension(contentType string) string {
	switch {
	case strings.Contains(contentType, "mp4"), strings.Contains(contentType, "m4a"):
		return ".m4a"
	case strings.Contains(contentType, "mpeg"), strings.Contains(contentType, "mp3"):
		return ".mp3"
	case strings.Contains(contentType, "wav"):
		return ".wav"
	case strings.Contains(contentType, "ogg"):
		return ".ogg"
	default:
		return ".webm"
	}
}

// Transcribe handles the POST request to convert an audio dictation to text
func (handler *transcribeHandler) Transcribe(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "audio file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "failed to read audio file"})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	filename := "dictation" + audioExtension(fileHeader.Header.Get("Content-Type"))

	text, err := handler.dictationService.Transcribe(ctx, filename, file, fileHeader.Size)
	if err != nil {
		switch {
		case errors.Is(err, dictation.ErrAudioTooSmall):
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "audio file too small"})
		case errors.Is(err, dictation.ErrAudioTooLarge):
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "audio file too large (max 25MB)"})
		default:
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("transcription failed: %v", err)})
		}
		return
	}

	ctx.JSON(http.StatusOK, TranscribeResponse{Text: text})
}
