package models

import (
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/notes"
)

// NoteModel is the GORM database model for encounter notes (infrastructure concern)
type NoteModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	UserID         uint      `gorm:"not null;index"`
	Label          *string   `gorm:"type:text"`
	PatientAge     *string   `gorm:"type:text"`
	PatientGender  *string   `gorm:"type:text"`
	VisitType      *string   `gorm:"type:text"`
	Specialty      *string   `gorm:"type:text"`
	ChiefComplaint *string   `gorm:"type:text"`
	RawDictation   *string   `gorm:"type:text"`
	SOAPNote       *string   `gorm:"column:soap_note;type:text"`
	EncounterTime  *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (NoteModel) TableName() string {
	return "notes"
}

// ToDomain converts GORM model to domain entity
func (m *NoteModel) ToDomain() *notes.Note {
	return &notes.Note{
		ID:             m.ID,
		UserID:         m.UserID,
		Label:          m.Label,
		PatientAge:     m.PatientAge,
		PatientGender:  m.PatientGender,
		VisitType:      m.VisitType,
		Specialty:      m.Specialty,
		ChiefComplaint: m.ChiefComplaint,
		RawDictation:   m.RawDictation,
		SOAPNote:       m.SOAPNote,
		EncounterTime:  m.EncounterTime,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NoteModel) FromDomain(n *notes.Note) {
	m.ID = n.ID
	m.UserID = n.UserID
	m.Label = n.Label
	m.PatientAge = n.PatientAge
	m.PatientGender = n.PatientGender
	m.VisitType = n.VisitType
	m.Specialty = n.Specialty
	m.ChiefComplaint = n.ChiefComplaint
	m.RawDictation = n.RawDictation
	m.SOAPNote = n.SOAPNote
	m.EncounterTime = n.EncounterTime
	m.CreatedAt = n.CreatedAt
}
