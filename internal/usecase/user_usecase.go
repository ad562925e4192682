// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new user. The
// validate tags guard structural absence at the transport edge; the domain
// validation rules remain the authority on field content and messages.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AssignRoleInput defines the data required to grant a role to a user.
type AssignRoleInput struct {
	RoleName string `json:"roleName" validate:"required"`
}

// --- Output DTOs ---

// UserOutput is the public projection of a user. It never carries credential
// material.
type UserOutput struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Roles []string  `json:"roles"`
}

// UserUsecase defines the interface for user directory operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CreateUser registers a new user after validating name, email and
	// password, enforcing email uniqueness and hashing the credential.
	CreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error)

	// GetUser returns a user's projection with role names sorted ascending.
	GetUser(ctx context.Context, id uuid.UUID) (*UserOutput, error)

	// AssignRole grants a named role to a user, creating the role on first
	// use. Granting a role the user already holds is a no-op.
	AssignRole(ctx context.Context, userID uuid.UUID, input *AssignRoleInput) error
}
