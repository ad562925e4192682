package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"userperm/internal/delivery/http/middleware"
	"userperm/internal/delivery/http/response"
	"userperm/internal/delivery/http/router"
	"userperm/internal/delivery/http/router/handler"
	"userperm/internal/delivery/http/validator"
	domainerrors "userperm/internal/domain/errors"
	mockUsecase "userperm/internal/mocks/usecase"
	"userperm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	userUC := mockUsecase.NewMockUserUsecase(t)
	authUC := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		UserHandler: handler.NewUserHandler(userUC, logger),
		AuthHandler: handler.NewAuthHandler(authUC, logger),
	})
	r.RegisterRoutes(e)

	return e, userUC, authUC
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Parallel()

	e, userUC, _ := newTestServer(t)

	newID := uuid.New()
	userUC.EXPECT().
		CreateUser(mock.Anything, &usecase.CreateUserInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "sup3rsecret",
		}).
		Return(&usecase.UserOutput{
			ID:    newID,
			Name:  "Alice",
			Email: "alice@example.com",
			Roles: []string{},
		}, nil)

	rec := doJSON(e, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","password":"sup3rsecret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Contains(t, rec.Body.String(), newID.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_CreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	e, userUC, _ := newTestServer(t)

	userUC.EXPECT().
		CreateUser(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailAlreadyInUse)

	rec := doJSON(e, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","password":"sup3rsecret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Email already in use.", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMAIL_ALREADY_IN_USE", resp.Error.Code)
}

func TestUserHandler_CreateUser_ValidationFailure(t *testing.T) {
	t.Parallel()

	e, userUC, _ := newTestServer(t)

	userUC.EXPECT().
		CreateUser(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError("Password must be at least 6 characters."))

	rec := doJSON(e, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","password":"tiny"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Password must be at least 6 characters.", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestUserHandler_CreateUser_AbsentBody(t *testing.T) {
	t.Parallel()

	// No usecase expectation: an empty or null body must be rejected at the
	// transport edge instead of reaching the usecase as zero values.
	for _, body := range []string{"", "null"} {
		e, _, _ := newTestServer(t)

		rec := doJSON(e, http.MethodPost, "/users", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	}
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Parallel()

	e, userUC, _ := newTestServer(t)

	userID := uuid.New()
	userUC.EXPECT().
		GetUser(mock.Anything, userID).
		Return(&usecase.UserOutput{
			ID:    userID,
			Name:  "Alice",
			Email: "alice@example.com",
			Roles: []string{"admin", "editor"},
		}, nil)

	rec := doJSON(e, http.MethodGet, "/users/"+userID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"roles":["admin","editor"]`)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	t.Parallel()

	// No usecase expectation: a malformed ID never reaches the usecase.
	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/users/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	e, userUC, _ := newTestServer(t)

	userID := uuid.New()
	userUC.EXPECT().
		GetUser(mock.Anything, userID).
		Return(nil, domainerrors.ErrUserNotFound)

	rec := doJSON(e, http.MethodGet, "/users/"+userID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "User not found.", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "USER_NOT_FOUND", resp.Error.Code)
}

func TestUserHandler_AssignRole(t *testing.T) {
	t.Parallel()

	e, userUC, _ := newTestServer(t)

	userID := uuid.New()
	userUC.EXPECT().
		AssignRole(mock.Anything, userID, &usecase.AssignRoleInput{RoleName: "Admin"}).
		Return(nil)

	rec := doJSON(e, http.MethodPost, "/users/"+userID.String()+"/roles",
		`{"roleName":"Admin"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUserHandler_AssignRole_AbsentBody(t *testing.T) {
	t.Parallel()

	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/users/"+uuid.New().String()+"/roles", "null")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
