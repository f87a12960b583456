package services

import "errors"

// ValidationError is a deck payload rule violation. Every ValidationError
// matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrMissingName      = &ValidationError{Code: "MissingName", Message: "Missing deck name"}
	ErrInvalidCardCount = &ValidationError{Code: "InvalidCardCount", Message: "A deck must contain exactly 10 cards"}

	ErrInvalidDeckID = errors.New("invalid deck id")
	ErrDeckNotFound  = errors.New("deck not found")

	// ErrInternal is what callers see for any storage or unexpected failure.
	ErrInternal = errors.New("internal error")
	// ErrPersistence wraps every storage error raised by a repository.
	ErrPersistence = errors.New("persistence failure")

	ErrCardNotFound = errors.New("card not found")

	ErrMissingCredentials = errors.New("missing credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
