// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. The email is stored in its
// normalized form (trimmed and lower-cased); the unique index on that
// normalized column is what ultimately enforces email uniqueness.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated at creation.
	Name         string    // The user's display name, trimmed on creation.
	Email        string    // The normalized email, used as the canonical login key.
	PasswordHash string    // Base64-encoded PBKDF2 key derived from the password.
	PasswordSalt string    // Base64-encoded random salt used for the derivation.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// NormalizeEmail converts an email to the canonical form used for storage
// and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
