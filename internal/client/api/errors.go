package api

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when an operation requires a session token
// and none is set. The request is never attempted; the caller should send
// the user back to login.
var ErrUnauthenticated = errors.New("not authenticated")

// ErrUserConflict is returned by Login when the username is already taken
// with a different password, so the caller can show a specific message.
var ErrUserConflict = errors.New("user already exists with a different password")

// ValidationError reports a required field that was empty or invalid,
// detected locally before any network call.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// RemoteError reports a non-success HTTP status from the server, carrying
// the server's error message when one was provided. Remote failures are
// never retried automatically.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}
