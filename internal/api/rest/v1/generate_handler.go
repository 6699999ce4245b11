package v1

import (
	"errors"
	"net/http"

	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/gin-gonic/gin"
)

// GenerateHandler defines the interface for handling model-assisted drafting operations
type GenerateHandler interface {
	Extract(ctx *gin.Context)
	GenerateSOAP(ctx *gin.Context)
}

// generateHandler struct holds the services
type generateHandler struct {
	dictationService dictation.DictationService
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(dictationService dictation.DictationService) GenerateHandler {
	return &generateHandler{
		dictationService: dictationService,
	}
}

// Extract handles the POST request to pull demographics out of a dictation
func (handler *generateHandler) Extract(ctx *gin.Context) {
	var request ExtractRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid extraction data: " + err.Error()})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	demographics, err := handler.dictationService.Extract(ctx, request.Dictation)
	if err != nil {
		if errors.Is(err, dictation.ErrDictationTooShort) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "dictation too short"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "extraction failed: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newExtractResponse(demographics))
}

// GenerateSOAP handles the POST request to draft a SOAP note from a dictation
func (handler *generateHandler) GenerateSOAP(ctx *gin.Context) {
	var request GenerateRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid generation data: " + err.Error()})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	soapNote, err := handler.dictationService.GenerateSOAP(ctx, request.Dictation, request.Demographics())
	if err != nil {
		if errors.Is(err, dictation.ErrDictationTooShort) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "dictation too short"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "generation failed: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, GenerateResponse{SOAPNote: soapNote})
}
