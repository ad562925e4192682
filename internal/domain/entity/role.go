// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named permission label. Names are unique and matched against the
// exact stored string: lookup does no case folding, so "Admin" and "admin"
// are two distinct roles. Roles are created lazily on first assignment.
type Role struct {
	ID        uuid.UUID // The unique identifier for this role.
	Name      string    // The role name, trimmed on creation only.
	CreatedAt time.Time // Timestamp of when this role was first created.
}

// UserRoleGrant is the join row assigning a Role to a User. The pair
// (UserID, RoleID) is the grant's key; a user holds at most one grant per
// role, so re-granting is a no-op rather than an error.
type UserRoleGrant struct {
	UserID    uuid.UUID // The user holding the grant.
	RoleID    uuid.UUID // The granted role.
	CreatedAt time.Time // Timestamp of when the grant was added.
}
