package service

import "errors"

// Domain outcomes the handlers translate to HTTP status codes.
var (
	ErrDuplicateUsername  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)
