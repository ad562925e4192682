// Package model holds the GORM persistence models mirroring the database
// schema. They are mapped to and from domain entities at the repository
// boundary so the domain stays free of storage tags.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The unique index sits on the email column, which holds
// the normalized (trimmed, lower-cased) form; it is the real enforcement
// point for email uniqueness, since the service-level duplicate check runs
// against the raw caller input.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(320);unique;not null"`
	Name         string    `gorm:"type:varchar(200);not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	PasswordSalt string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
