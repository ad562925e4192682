package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"userperm/internal/domain/entity"
	domainerrors "userperm/internal/domain/errors"
	"userperm/internal/domain/repository"
	mockRepo "userperm/internal/mocks/repository"
	mockService "userperm/internal/mocks/service"
	"userperm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type userServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	roleRepo  *mockRepo.MockRoleRepository
	grantRepo *mockRepo.MockGrantRepository
	hasher    *mockService.MockPasswordHasher
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		roleRepo:  mockRepo.NewMockRoleRepository(t),
		grantRepo: mockRepo.NewMockGrantRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
	}

	srv := NewUserService(UserServiceParams{
		TxManager: m.txManager,
		UserRepo:  m.userRepo,
		RoleRepo:  m.roleRepo,
		GrantRepo: m.grantRepo,
		Hasher:    m.hasher,
		Logger:    newTestLogger(),
	})

	return srv, m
}

// passthroughExecute makes the transaction manager mock run the supplied
// unit of work against the given factory, as the real manager would.
func passthroughExecute(m *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	m.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_CreateUser_Success(t *testing.T) {
	t.Parallel()

	srv, m := newUserService(t)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	passthroughExecute(m.txManager, factory)

	// The duplicate probe sees the email exactly as supplied, mixed case
	// intact; the stored row gets the normalized form.
	txUserRepo.EXPECT().
		FindByEmail(mock.Anything, "Alice@Example.COM").
		Return(nil, repository.ErrUserNotFound)

	m.hasher.EXPECT().
		CreateHash("sup3rsecret").
		Return("hashed", "salted", nil)

	newID := uuid.New()
	txUserRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "Alice", user.Name)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, "salted", user.PasswordSalt)
			user.ID = newID
		}).
		Return(nil)

	out, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		Name:     "  Alice  ",
		Email:    "Alice@Example.COM",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, newID, out.ID)
	assert.Equal(t, "Alice", out.Name)
	assert.Equal(t, "alice@example.com", out.Email)
	assert.Equal(t, []string{}, out.Roles)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	srv, m := newUserService(t)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	passthroughExecute(m.txManager, factory)

	txUserRepo.EXPECT().
		FindByEmail(mock.Anything, "bob@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "bob@example.com"}, nil)

	out, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "sup3rsecret",
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
	// The conflict must short-circuit before any key derivation happens.
	m.hasher.AssertNotCalled(t, "CreateHash", mock.Anything)
}

func TestUserService_CreateUser_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   *usecase.CreateUserInput
		wantMsg string
	}{
		{
			name:    "blank name",
			input:   &usecase.CreateUserInput{Name: "   ", Email: "a@b.com", Password: "secret1"},
			wantMsg: "Name is required.",
		},
		{
			name:    "short name",
			input:   &usecase.CreateUserInput{Name: "A", Email: "a@b.com", Password: "secret1"},
			wantMsg: "Name must have at least 2 characters.",
		},
		{
			name:    "blank email",
			input:   &usecase.CreateUserInput{Name: "Alice", Email: "", Password: "secret1"},
			wantMsg: "Email is required.",
		},
		{
			name:    "malformed email",
			input:   &usecase.CreateUserInput{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			wantMsg: "Invalid email format.",
		},
		{
			name:    "blank password",
			input:   &usecase.CreateUserInput{Name: "Alice", Email: "a@b.com", Password: ""},
			wantMsg: "Password is required.",
		},
		{
			name:    "short password",
			input:   &usecase.CreateUserInput{Name: "Alice", Email: "a@b.com", Password: "five5"},
			wantMsg: "Password must be at least 6 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations are set: a rejected input must never reach
			// the transaction manager, the hasher, or any repository.
			srv, _ := newUserService(t)

			out, err := srv.CreateUser(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, out)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantMsg, validationErr.Message())
		})
	}
}

func TestUserService_GetUser_Success(t *testing.T) {
	t.Parallel()

	srv, m := newUserService(t)

	userID := uuid.New()
	m.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Name: "Alice", Email: "alice@example.com"}, nil)
	m.grantRepo.EXPECT().
		ListRoleNames(mock.Anything, userID).
		Return([]string{"editor", "admin"}, nil)

	out, err := srv.GetUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, out.ID)
	assert.Equal(t, "Alice", out.Name)
	assert.Equal(t, "alice@example.com", out.Email)
	assert.Equal(t, []string{"admin", "editor"}, out.Roles)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	srv, m := newUserService(t)

	userID := uuid.New()
	m.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	out, err := srv.GetUser(context.Background(), userID)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_AssignRole_NewGrant(t *testing.T) {
	t.Parallel()

	srv, m := newUserService(t)

	userID := uuid.New()
	roleID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID}, nil)
	// The trimmed name keeps its case on the way to the role lookup.
	m.roleRepo.EXPECT().
		GetOrCreate(mock.Anything, "Admin").
		Return(&entity.Role{ID: roleID, Name: "Admin"}, nil)
	m.grantRepo.EXPECT().
		Exists(mock.Anything, userID, roleID).
		Return(false, nil)

	txGrantRepo := mockRepo.NewMockGrantRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().GrantRepo().Return(txGrantRepo)
	passthroughExecute(m.txManager, factory)

	txGrantRepo.EXPECT().
		Exists(mock.Anything, userID, roleID).
		Return(false, nil)
	txGrantRepo.EXPECT().
		Add(mock.Anything, &entity.UserRoleGrant{UserID: userID, RoleID: roleID}).
		Return(nil)

	err := srv.AssignRole(context.Background(), userID, &usecase.AssignRoleInput{RoleName: "  Admin  "})

	require.NoError(t, err)
}

func TestUserService_AssignRole_AlreadyHeld(t *testing.T) {
	t.Parallel()

	srv, m := newUserService(t)

	userID := uuid.New()
	roleID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID}, nil)
	m.roleRepo.EXPECT().
		GetOrCreate(mock.Anything, "admin").
		Return(&entity.Role{ID: roleID, Name: "admin"}, nil)
	m.grantRepo.EXPECT().
		Exists(mock.Anything, userID, roleID).
		Return(true, nil)

	// No Execute expectation on the transaction manager: a grant the user
	// already holds must complete without opening a transaction at all.
	err := srv.AssignRole(context.Background(), userID, &usecase.AssignRoleInput{RoleName: "admin"})

	require.NoError(t, err)
	m.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_AssignRole_BlankRoleName(t *testing.T) {
	t.Parallel()

	for _, roleName := range []string{"", "   "} {
		srv, _ := newUserService(t)

		err := srv.AssignRole(context.Background(), uuid.New(), &usecase.AssignRoleInput{RoleName: roleName})

		require.Error(t, err)

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "Role name is required.", validationErr.Message())
	}
}

func TestUserService_AssignRole_UserNotFound(t *testing.T) {
	t.Parallel()

	srv, m := newUserService(t)

	userID := uuid.New()
	m.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	err := srv.AssignRole(context.Background(), userID, &usecase.AssignRoleInput{RoleName: "admin"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
