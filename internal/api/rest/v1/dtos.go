package v1

import (
	"errors"
	"fmt"

	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/BillBrieferServer/scribe/internal/domain/notes"
	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the JSON body returned for successful requests without payload
type InfoResponse struct {
	Message string `json:"message"`
}

// validateStruct runs validator tags and flattens field errors into one message.
func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// Validate for validating RegisterRequest struct
func (r *RegisterRequest) Validate() error {
	return validateStruct(r)
}

// VerifyRequest is the payload for email verification
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// Validate for validating VerifyRequest struct
func (r *VerifyRequest) Validate() error {
	return validateStruct(r)
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

// ForgotPasswordRequest is the payload for requesting a password reset code
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Validate for validating ForgotPasswordRequest struct
func (r *ForgotPasswordRequest) Validate() error {
	return validateStruct(r)
}

// ResetPasswordRequest is the payload for completing a password reset
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// Validate for validating ResetPasswordRequest struct
func (r *ResetPasswordRequest) Validate() error {
	return validateStruct(r)
}

// UserResponse describes the authenticated account
type UserResponse struct {
	ID            uint   `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	EmailVerified bool   `json:"email_verified"`
}

func newUserResponse(user *users.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		EmailVerified: user.EmailVerified,
	}
}

// LoginResponse carries the login confirmation and user summary
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// NoteCreateRequest is the payload for creating a note. All fields optional.
type NoteCreateRequest struct {
	Label          *string `json:"label"`
	PatientAge     *string `json:"patient_age"`
	PatientGender  *string `json:"patient_gender"`
	VisitType      *string `json:"visit_type"`
	Specialty      *string `json:"specialty"`
	ChiefComplaint *string `json:"chief_complaint"`
	RawDictation   *string `json:"raw_dictation"`
	SOAPNote       *string `json:"soap_note"`
	EncounterTime  *string `json:"encounter_time"`
}

// ToDomain converts the request to a domain note
func (r *NoteCreateRequest) ToDomain() *notes.Note {
	return &notes.Note{
		Label:          r.Label,
		PatientAge:     r.PatientAge,
		PatientGender:  r.PatientGender,
		VisitType:      r.VisitType,
		Specialty:      r.Specialty,
		ChiefComplaint: r.ChiefComplaint,
		RawDictation:   r.RawDictation,
		SOAPNote:       r.SOAPNote,
		EncounterTime:  r.EncounterTime,
	}
}

// NoteResponse is the full note representation
type NoteResponse struct {
	ID             uint    `json:"id"`
	Label          *string `json:"label"`
	PatientAge     *string `json:"patient_age"`
	PatientGender  *string `json:"patient_gender"`
	VisitType      *string `json:"visit_type"`
	Specialty      *string `json:"specialty"`
	ChiefComplaint *string `json:"chief_complaint"`
	RawDictation   *string `json:"raw_dictation"`
	SOAPNote       *string `json:"soap_note"`
	EncounterTime  *string `json:"encounter_time"`
	CreatedAt      string  `json:"created_at"`
}

func newNoteResponse(note *notes.Note) NoteResponse {
	return NoteResponse{
		ID:             note.ID,
		Label:          note.Label,
		PatientAge:     note.PatientAge,
		PatientGender:  note.PatientGender,
		VisitType:      note.VisitType,
		Specialty:      note.Specialty,
		ChiefComplaint: note.ChiefComplaint,
		RawDictation:   note.RawDictation,
		SOAPNote:       note.SOAPNote,
		EncounterTime:  note.EncounterTime,
		CreatedAt:      note.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

// NoteListItemResponse is the abbreviated note representation used by listings
type NoteListItemResponse struct {
	ID             uint    `json:"id"`
	Label          *string `json:"label"`
	ChiefComplaint *string `json:"chief_complaint"`
	CreatedAt      string  `json:"created_at"`
}

func newNoteListItemResponse(note *notes.Note) NoteListItemResponse {
	return NoteListItemResponse{
		ID:             note.ID,
		Label:          note.Label,
		ChiefComplaint: note.ChiefComplaint,
		CreatedAt:      note.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

// ExtractRequest is the payload for demographics extraction
type ExtractRequest struct {
	Dictation string `json:"dictation" validate:"required"`
}

// Validate for validating ExtractRequest struct
func (r *ExtractRequest) Validate() error {
	return validateStruct(r)
}

// ExtractResponse carries the extracted demographics. Field names follow the
// client-side camelCase convention.
type ExtractResponse struct {
	Gender         *string `json:"gender"`
	Age            *string `json:"age"`
	VisitType      *string `json:"visitType"`
	Specialty      *string `json:"specialty"`
	ChiefComplaint *string `json:"chiefComplaint"`
	Confidence     float64 `json:"confidence"`
}

func newExtractResponse(d *dictation.Demographics) ExtractResponse {
	return ExtractResponse{
		Gender:         d.Gender,
		Age:            d.Age,
		VisitType:      d.VisitType,
		Specialty:      d.Specialty,
		ChiefComplaint: d.ChiefComplaint,
		Confidence:     d.Confidence,
	}
}

// GenerateRequest is the payload for SOAP note generation
type GenerateRequest struct {
	Dictation      string  `json:"dictation" validate:"required"`
	Gender         *string `json:"gender"`
	Age            *string `json:"age"`
	VisitType      *string `json:"visitType"`
	Specialty      *string `json:"specialty"`
	ChiefComplaint *string `json:"chiefComplaint"`
}

// Validate for validating GenerateRequest struct
func (r *GenerateRequest) Validate() error {
	return validateStruct(r)
}

// Demographics converts the optional context fields to the domain value
func (r *GenerateRequest) Demographics() *dictation.Demographics {
	return &dictation.Demographics{
		Gender:         r.Gender,
		Age:            r.Age,
		VisitType:      r.VisitType,
		Specialty:      r.Specialty,
		ChiefComplaint: r.ChiefComplaint,
	}
}

// GenerateResponse carries the generated SOAP note
type GenerateResponse struct {
	SOAPNote string `json:"soap_note"`
}

// TranscribeResponse carries the transcribed dictation text
type TranscribeResponse struct {
	Text string `json:"text"`
}
