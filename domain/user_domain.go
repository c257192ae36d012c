package domain

import "errors"

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "logged in successfully"
	MessageSuccessLogout   = "logged out successfully"

	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials deliberately covers both unknown username and
	// wrong password so the response does not leak which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingCredentials = errors.New("username and password are required")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
		Remember bool   `json:"remember"`
	}
)
