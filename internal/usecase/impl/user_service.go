// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"userperm/internal/domain/entity"
	domainerrors "userperm/internal/domain/errors"
	"userperm/internal/domain/repository"
	"userperm/internal/domain/service"
	"userperm/internal/domain/validation"
	"userperm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	grantRepo repository.GrantRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	RoleRepo  repository.RoleRepository
	GrantRepo repository.GrantRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		roleRepo:  params.RoleRepo,
		grantRepo: params.GrantRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// CreateUser orchestrates the complete user registration process.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserOutput, error) {
	if err := validation.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	srv.logger.Info("Starting user creation", slog.String("email", entity.NormalizeEmail(input.Email)))

	var createdUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// The duplicate check runs against the email exactly as the caller
		// supplied it; the unique index on the normalized column is the
		// backstop for variants that slip past this check.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyInUse
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		// The derivation is CPU-bound and deliberately slow; honor
		// cancellation before spending the work.
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		hash, salt, err := srv.hasher.CreateHash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during user creation")
		}

		newUser := &entity.User{
			Name:         strings.TrimSpace(input.Name),
			Email:        entity.NormalizeEmail(input.Email),
			PasswordHash: hash,
			PasswordSalt: salt,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		createdUser = newUser

		return nil
	})
	if err != nil {
		srv.logger.Warn("User creation failed", slog.String("email", entity.NormalizeEmail(input.Email)), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("User created", slog.Any("userID", createdUser.ID))

	return &usecase.UserOutput{
		ID:    createdUser.ID,
		Name:  createdUser.Name,
		Email: createdUser.Email,
		Roles: []string{},
	}, nil
}

// GetUser returns a user's public projection with role names sorted
// ascending, independent of grant insertion order.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	roleNames, err := srv.grantRepo.ListRoleNames(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load role grants")
	}
	slices.Sort(roleNames)

	return &usecase.UserOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Roles: roleNames,
	}, nil
}

// AssignRole grants a named role to a user, creating the role on first use.
// A grant the user already holds returns successfully without opening a
// transaction, so the idempotent path commits nothing.
func (srv *userService) AssignRole(ctx context.Context, userID uuid.UUID, input *usecase.AssignRoleInput) error {
	roleName := strings.TrimSpace(input.RoleName)
	if roleName == "" {
		return domainerrors.NewValidationError("Role name is required.")
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for role assignment")
	}

	// Exact-match lookup: the trimmed name keeps its case, so "Admin" and
	// "admin" resolve to two distinct roles.
	role, err := srv.roleRepo.GetOrCreate(ctx, roleName)
	if err != nil {
		return errors.Wrap(err, "failed to get or create role")
	}

	held, err := srv.grantRepo.Exists(ctx, userID, role.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check existing grant")
	}
	if held {
		srv.logger.Debug("Role already granted", slog.Any("userID", userID), slog.String("role", role.Name))

		return nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		grantRepo := repoFactory.GrantRepo()

		// Re-check inside the transaction; a concurrent assignment between
		// the lookup above and this write must not fail the call.
		held, err := grantRepo.Exists(ctx, userID, role.ID)
		if err != nil {
			return errors.Wrap(err, "failed to re-check existing grant")
		}
		if held {
			return nil
		}

		return grantRepo.Add(ctx, &entity.UserRoleGrant{UserID: userID, RoleID: role.ID})
	})
	if err != nil {
		srv.logger.Warn("Role assignment failed", slog.Any("userID", userID), slog.String("role", roleName), slog.Any("error", err))

		return err
	}

	srv.logger.Debug("Role granted", slog.Any("userID", userID), slog.String("role", role.Name))

	return nil
}
