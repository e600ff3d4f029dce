package errors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrEmailTaken      = errors.New("email already exists")
	ErrInvalidUserData = errors.New("invalid user data")
)
