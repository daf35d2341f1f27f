package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrIntakeNotFound     = errors.New("waste intake record not found")
	ErrDuplicateCategory  = errors.New("waste category already exists")
	ErrInvalidDateRange   = errors.New("end date precedes start date")
	ErrInvalidMonth       = errors.New("month must be between 1 and 12")
	ErrStoreUnavailable   = errors.New("record store unavailable")
)
