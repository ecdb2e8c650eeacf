package service

import "errors"

var (
	// ErrUserConflict means the login exists with a different password.
	ErrUserConflict = errors.New("user exists with a different password")
	// ErrEmptyTitle means a subject title was empty after trimming.
	ErrEmptyTitle = errors.New("title must not be empty")
	// ErrEmptyContent means a note had no content after sanitization.
	ErrEmptyContent = errors.New("note content must not be empty")
	// ErrNotFound means the entity does not exist or belongs to another user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidToken means the session token failed verification.
	ErrInvalidToken = errors.New("invalid token")
)
