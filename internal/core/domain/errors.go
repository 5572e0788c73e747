package domain

import "errors"

var (
	// ErrEmailTaken is returned when registration hits the unique email index.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidEmail is returned for a malformed email address.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordTooShort is returned when a password is below MinPasswordLength.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrInvalidCredentials covers unknown email and wrong password alike, so a
	// login failure never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a presented token fails signature
	// verification, carries the wrong access tag, or has been revoked.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmptyText is returned when a todo's text is empty after trimming.
	ErrEmptyText = errors.New("todo text must not be empty")
	// ErrTodoNotFound masks absent, malformed and wrong-owner ids alike; the
	// caller cannot tell which, so other users' data is never disclosed.
	ErrTodoNotFound = errors.New("todo not found")
	// ErrUserNotFound is an internal lookup miss; the API layer never maps it
	// to anything more specific than the masked errors above.
	ErrUserNotFound = errors.New("user not found")
)
