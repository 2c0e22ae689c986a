package users

import "errors"

// Login/registration outcomes surfaced to the HTTP layer. Each maps to a
// specific status code and user-facing message there.
var (
	ErrMissingFields      = errors.New("name, password and either email or phone are required")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrInvalidPassword    = errors.New("invalid password")
)
