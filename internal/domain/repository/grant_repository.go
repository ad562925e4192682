package repository

import (
	"context"

	"userperm/internal/domain/entity"

	"github.com/google/uuid"
)

// GrantRepository defines the operations for the user-role join rows. Grants
// are keyed by the (userID, roleID) pair and behave as a set: adding an
// existing pair must not produce a second row.
type GrantRepository interface {
	// Exists reports whether the user already holds a grant for the role.
	Exists(ctx context.Context, userID, roleID uuid.UUID) (bool, error)

	// Add persists a new grant row. A concurrent duplicate insert is
	// absorbed by the composite-key constraint and reported as success.
	Add(ctx context.Context, grant *entity.UserRoleGrant) error

	// ListRoleNames returns the names of all roles granted to the user, in
	// storage iteration order. Callers impose their own ordering.
	ListRoleNames(ctx context.Context, userID uuid.UUID) ([]string, error)
}
