package models

import (
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
)

// SessionModel is the GORM database model for browser sessions (infrastructure concern)
type SessionModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null;index"`
	TokenHash string    `gorm:"not null;uniqueIndex;type:varchar(64)"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *users.Session {
	return &users.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *users.Session) {
	m.ID = s.ID
	m.UserID = s.UserID
	m.TokenHash = s.TokenHash
	m.ExpiresAt = s.ExpiresAt
	m.CreatedAt = s.CreatedAt
}
