package repository

import (
	"context"
	"errors"

	"userperm/internal/domain/entity"
)

// ErrRoleNotFound is a domain-specific error returned when a role is not found.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines the operations for role persistence. Role names are
// matched against the exact stored string; no case folding is applied.
type RoleRepository interface {
	// FindByName retrieves a role by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// GetOrCreate looks up a role by its exact name, creating and persisting
	// it when no match exists. The operation is atomic with respect to the
	// role-name unique constraint: when two callers race to create the same
	// name, both receive the single surviving role.
	GetOrCreate(ctx context.Context, name string) (*entity.Role, error)
}
