// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"userperm/internal/domain/entity"
	domainerrors "userperm/internal/domain/errors"
	"userperm/internal/domain/repository"
	"userperm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// grantRepository implements the domain.GrantRepository interface using GORM.
// Grants are plain join rows keyed by (user_id, role_id); there are no
// navigation properties between users and roles.
type grantRepository struct {
	db *gorm.DB
}

// NewGrantRepository is the constructor for grantRepository.
func NewGrantRepository(db *gorm.DB) repository.GrantRepository {
	return &grantRepository{db: db}
}

// Exists reports whether the user already holds a grant for the role.
func (repo *grantRepository) Exists(ctx context.Context, userID, roleID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserRoleModel{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check grant existence")
	}

	return count > 0, nil
}

// Add persists a new grant row. A duplicate insert trips the composite
// primary key and is absorbed as success, keeping the operation idempotent
// under concurrency.
func (repo *grantRepository) Add(ctx context.Context, grant *entity.UserRoleGrant) error {
	grantM := model.UserRoleModel{
		UserID: grant.UserID,
		RoleID: grant.RoleID,
	}

	if err := repo.db.WithContext(ctx).Create(&grantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRoleAssignFailed.WrapMessage("invalid user or role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add role grant")
	}

	grant.CreatedAt = grantM.CreatedAt

	return nil
}

// ListRoleNames returns the names of all roles granted to the user. No
// ordering is imposed; callers sort as needed.
func (repo *grantRepository) ListRoleNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	names := make([]string, 0)
	err := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role names")
	}

	return names, nil
}
