package impl

import (
	"context"
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

type authServiceMocks struct {
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenGenerator
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	m := &authServiceMocks{
		userRepo: mockRepo.NewMockUserRepository(t),
		hasher:   mockService.NewMockPasswordHasher(t),
		tokens:   mockService.NewMockTokenGenerator(t),
	}

	srv := NewAuthService(AuthServiceParams{
		UserRepo: m.userRepo,
		Hasher:   m.hasher,
		Tokens:   m.tokens,
		Logger:   newTestLogger(),
	})

	return srv, m
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	srv, m := newAuthService(t)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
		PasswordSalt: "stored-salt",
	}

	// The lookup runs against the normalized email, not the raw input.
	m.userRepo.EXPECT().
		FindByEmail(mock.Anything, "alice@example.com").
		Return(user, nil)
	m.hasher.EXPECT().
		Verify("sup3rsecret", "stored-hash", "stored-salt").
		Return(true, nil)
	m.tokens.EXPECT().
		Generate().
		Return("opaque-token", nil)

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "Alice@Example.COM",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Login successful.", out.Message)
	assert.Equal(t, "opaque-token", out.Token)
}

func TestAuthService_Login_FailureIsIndistinguishable(t *testing.T) {
	t.Parallel()

	srvUnknown, mUnknown := newAuthService(t)
	mUnknown.userRepo.EXPECT().
		FindByEmail(mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	unknownOut, err := srvUnknown.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)

	srvWrong, mWrong := newAuthService(t)
	mWrong.userRepo.EXPECT().
		FindByEmail(mock.Anything, "alice@example.com").
		Return(&entity.User{
			ID:           uuid.New(),
			Email:        "alice@example.com",
			PasswordHash: "stored-hash",
			PasswordSalt: "stored-salt",
		}, nil)
	mWrong.hasher.EXPECT().
		Verify("wrongpass", "stored-hash", "stored-salt").
		Return(false, nil)

	wrongOut, err := srvWrong.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrongpass",
	})
	require.NoError(t, err)

	// Unknown email and wrong password must produce byte-identical results
	// so the response never reveals whether an email is registered.
	assert.Equal(t, unknownOut, wrongOut)
	assert.False(t, wrongOut.Success)
	assert.Equal(t, "Invalid credentials.", wrongOut.Message)
	assert.Empty(t, wrongOut.Token)
}

func TestAuthService_Login_ShapeViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   *usecase.LoginInput
		wantMsg string
	}{
		{
			name:    "blank email",
			input:   &usecase.LoginInput{Email: "", Password: "sup3rsecret"},
			wantMsg: "Email is required.",
		},
		{
			name:    "malformed email",
			input:   &usecase.LoginInput{Email: "not-an-email", Password: "sup3rsecret"},
			wantMsg: "Invalid email format.",
		},
		{
			name:    "blank password",
			input:   &usecase.LoginInput{Email: "alice@example.com", Password: ""},
			wantMsg: "Password is required.",
		},
		{
			name:    "short password",
			input:   &usecase.LoginInput{Email: "alice@example.com", Password: "five5"},
			wantMsg: "Password must be at least 6 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: a malformed credential shape is rejected
			// before any repository or hasher work.
			srv, _ := newAuthService(t)

			out, err := srv.Login(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, out)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantMsg, validationErr.Message())
		})
	}
}

func TestAuthService_Login_CorruptStoredCredential(t *testing.T) {
	t.Parallel()

	srv, m := newAuthService(t)

	m.userRepo.EXPECT().
		FindByEmail(mock.Anything, "alice@example.com").
		Return(&entity.User{
			ID:           uuid.New(),
			Email:        "alice@example.com",
			PasswordHash: "not base64!",
			PasswordSalt: "stored-salt",
		}, nil)
	m.hasher.EXPECT().
		Verify("sup3rsecret", "not base64!", "stored-salt").
		Return(false, errors.New("failed to decode stored hash"))

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "sup3rsecret",
	})

	// Undecodable stored material is an error, not a failed login result.
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestAuthService_Login_Cancelled(t *testing.T) {
	t.Parallel()

	srv, m := newAuthService(t)

	ctx, cancel := context.WithCancel(context.Background())

	m.userRepo.EXPECT().
		FindByEmail(mock.Anything, "alice@example.com").
		Run(func(_ context.Context, _ string) { cancel() }).
		Return(&entity.User{
			ID:           uuid.New(),
			Email:        "alice@example.com",
			PasswordHash: "stored-hash",
			PasswordSalt: "stored-salt",
		}, nil)

	out, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "sup3rsecret",
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
	// Cancellation is honored before the key derivation runs.
	m.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}
