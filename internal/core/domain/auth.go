package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrMissingToken       = errors.New("login response has no access token")
)

// Credentials is the login payload. It is never persisted.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Auth is the login response.
type Auth struct {
	AccessToken string `json:"access_token"`
}
