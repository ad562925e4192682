// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"userperm/internal/domain/entity"
	domainerrors "userperm/internal/domain/errors"
	"userperm/internal/domain/repository"
	"userperm/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByName retrieves a role by its exact name. The comparison is
// case-sensitive; no folding happens here or in the schema collation.
func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

// GetOrCreate looks up a role by its exact name and creates it when absent.
// When two callers race to create the same name, the loser's insert hits the
// unique constraint and the surviving row is fetched instead.
func (repo *roleRepository) GetOrCreate(ctx context.Context, name string) (*entity.Role, error) {
	role, err := repo.FindByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, repository.ErrRoleNotFound) {
		return nil, err
	}

	roleM := model.RoleModel{Name: name}
	if err := repo.db.WithContext(ctx).Create(&roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Lost the creation race; the winner's row is the role.
			return repo.FindByName(ctx, name)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	return toRoleDomain(&roleM), nil
}

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
