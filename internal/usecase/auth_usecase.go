package usecase

import "context"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput is the login result. Failed credentials are a normal result
// with Success false, never an error: unknown email and wrong password
// produce identical outputs so callers cannot probe which emails exist.
type LoginOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// AuthUsecase defines the interface for credential authentication.
type AuthUsecase interface {
	// Login verifies an email/password pair. Malformed input shapes fail
	// with a validation error; bad credentials yield a failure result.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
