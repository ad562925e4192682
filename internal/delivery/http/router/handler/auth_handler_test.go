package handler_test

import (
	"net/http"
	"testing"

	domainerrors "userperm/internal/domain/errors"
	"userperm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	t.Parallel()

	e, _, authUC := newTestServer(t)

	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{
			Email:    "alice@example.com",
			Password: "sup3rsecret",
		}).
		Return(&usecase.LoginOutput{
			Success: true,
			Message: "Login successful.",
			Token:   "opaque-token",
		}, nil)

	rec := doJSON(e, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"sup3rsecret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Login successful.", resp.Message)
	assert.Contains(t, rec.Body.String(), "opaque-token")
}

func TestAuthHandler_Login_RejectedCredentials(t *testing.T) {
	t.Parallel()

	e, _, authUC := newTestServer(t)

	authUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(&usecase.LoginOutput{
			Success: false,
			Message: "Invalid credentials.",
		}, nil)

	rec := doJSON(e, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"wrongpass"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credentials.", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestAuthHandler_Login_AbsentBody(t *testing.T) {
	t.Parallel()

	// No usecase expectation: a body that binds to nothing must be rejected
	// at the transport edge, not passed on as zero values.
	for _, body := range []string{"", "null", "{}"} {
		e, _, _ := newTestServer(t)

		rec := doJSON(e, http.MethodPost, "/login", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	}
}

func TestAuthHandler_Login_ShapeViolation(t *testing.T) {
	t.Parallel()

	e, _, authUC := newTestServer(t)

	authUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError("Invalid email format."))

	rec := doJSON(e, http.MethodPost, "/login",
		`{"email":"not-an-email","password":"sup3rsecret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Invalid email format.", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}
