package impl

import (
	"context"
	"log/slog"

	"userperm/internal/domain/entity"
	"userperm/internal/domain/repository"
	"userperm/internal/domain/service"
	"userperm/internal/domain/validation"
	"userperm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	loginFailedMessage  = "Invalid credentials."
	loginSuccessMessage = "Login successful."
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenGenerator
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenGenerator
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		logger:   params.Logger,
	}
}

// Login verifies an email/password pair. A malformed email or password shape
// is a validation error, distinct from rejected credentials. Unknown email
// and wrong password both yield the same failure result so the response
// never reveals whether an email is registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(input.Email)
	srv.logger.Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", email))

			return failedLogin(), nil
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Verification is CPU-bound and deliberately slow; honor cancellation
	// before spending the work.
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash, user.PasswordSalt)
	if err != nil {
		// Undecodable stored material is an infrastructure problem, not a
		// failed login.
		srv.logger.Error("Stored credential could not be verified", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify stored credential")
	}
	if !ok {
		srv.logger.Warn("Login failed", slog.String("email", email))

		return failedLogin(), nil
	}

	token, err := srv.tokens.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate login token")
	}

	srv.logger.Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Success: true,
		Message: loginSuccessMessage,
		Token:   token,
	}, nil
}

// failedLogin is the single failure result for both unknown emails and wrong
// passwords; the two cases must stay response-identical.
func failedLogin() *usecase.LoginOutput {
	return &usecase.LoginOutput{
		Success: false,
		Message: loginFailedMessage,
	}
}
