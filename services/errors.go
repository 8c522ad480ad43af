package services

import (
	"errors"
	"fmt"

	"github.com/everestllcweb-png/backend/utils/validation"
)

// Error kinds returned by the services. Test with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrConflict      = errors.New("conflict")
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConfiguration = errors.New("configuration error")
)

// Error carries a client-facing message alongside its kind and cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error of the given kind
func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Invalid reports a request that failed validation
func Invalid(message string) *Error {
	return NewError(ErrValidation, message, nil)
}

func invalidRecord(err error) *Error {
	return NewError(ErrValidation, validation.Message(err), nil)
}

func notFound(entity string) *Error {
	return NewError(ErrNotFound, entity+" not found", nil)
}
