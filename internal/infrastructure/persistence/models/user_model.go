package models

import (
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
)

// UserModel is the GORM database model for user accounts (infrastructure concern)
type UserModel struct {
	ID                   uint       `gorm:"primaryKey;autoIncrement"`
	Email                string     `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name                 string     `gorm:"not null;type:varchar(255)"`
	PasswordHash         string     `gorm:"not null;type:varchar(255)"`
	EmailVerified        bool       `gorm:"not null;default:false"`
	VerificationCodeHash string     `gorm:"type:varchar(64)"`
	VerificationExpires  *time.Time `gorm:""`
	ResetCodeHash        string     `gorm:"type:varchar(64)"`
	ResetCodeExpires     *time.Time `gorm:""`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:                   m.ID,
		Email:                m.Email,
		Name:                 m.Name,
		PasswordHash:         m.PasswordHash,
		EmailVerified:        m.EmailVerified,
		VerificationCodeHash: m.VerificationCodeHash,
		VerificationExpires:  m.VerificationExpires,
		ResetCodeHash:        m.ResetCodeHash,
		ResetCodeExpires:     m.ResetCodeExpires,
		CreatedAt:            m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.Name = u.Name
	m.PasswordHash = u.PasswordHash
	m.EmailVerified = u.EmailVerified
	m.VerificationCodeHash = u.VerificationCodeHash
	m.VerificationExpires = u.VerificationExpires
	m.ResetCodeHash = u.ResetCodeHash
	m.ResetCodeExpires = u.ResetCodeExpires
	m.CreatedAt = u.CreatedAt
}
