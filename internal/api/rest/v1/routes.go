package v1

import (
	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	authService users.AuthService,
	noteService notes.NoteService,
	dictationService dictation.DictationService,
	sessionMaxAgeSec int) {

	api := r.Group(BasePath) // lookup in version file

	// Auth Routes
	authHandler := NewAuthHandler(authService, sessionMaxAgeSec)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/verify", authHandler.Verify)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// Notes Routes
	noteHandler := NewNoteHandler(noteService)
	noteRoutes := api.Group("/notes", SessionAuth(authService))
	noteRoutes.POST("", noteHandler.Create)
	noteRoutes.GET("", noteHandler.List)
	noteRoutes.GET("/:id", noteHandler.GetByID)
	noteRoutes.DELETE("/:id", noteHandler.DeleteByID)
	noteRoutes.GET("/:id/export", noteHandler.ExportByID)

	// Generation Routes
	generateHandler := NewGenerateHandler(dictationService)
	generateRoutes := api.Group("/generate", SessionAuth(authService))
	generateRoutes.POST("/extract", generateHandler.Extract)
	generateRoutes.POST("/soap", generateHandler.GenerateSOAP)

	// Transcription Routes
	transcribeHandler := NewTranscribeHandler(dictationService)
	api.POST("/transcribe", SessionAuth(authService), transcribeHandler.Transcribe)
}
