package crud

import "errors"

// Sentinels for matching the error kinds with errors.Is.
var (
	// ErrBadRequest matches *BadRequestError.
	ErrBadRequest = errors.New("bad request")

	// ErrElementNotFound matches *ElementNotFoundError.
	ErrElementNotFound = errors.New("element not found")

	// ErrElementRegistration matches *ElementRegistrationError.
	ErrElementRegistration = errors.New("element registration failed")
)

// BadRequestError signals a structurally invalid request argument,
// such as an empty id passed to FindByID or DeleteByID.
type BadRequestError struct {
	Message string
	Err     error
}

func (e *BadRequestError) Error() string { return e.Message }

// Unwrap returns the repository fault that caused the error.
func (e *BadRequestError) Unwrap() error { return e.Err }

// Is reports whether target is ErrBadRequest.
func (e *BadRequestError) Is(target error) bool { return target == ErrBadRequest }

// ElementNotFoundError signals that a lookup or delete targeted an id with no stored entity.
type ElementNotFoundError struct {
	Message string
	Err     error
}

func (e *ElementNotFoundError) Error() string { return e.Message }

// Unwrap returns the repository fault that caused the error.
func (e *ElementNotFoundError) Unwrap() error { return e.Err }

// Is reports whether target is ErrElementNotFound.
func (e *ElementNotFoundError) Is(target error) bool { return target == ErrElementNotFound }

// ElementRegistrationError signals that a create or update violated a data integrity constraint.
// Message carries the text of the underlying violation.
type ElementRegistrationError struct {
	Message string
	Err     error
}

func (e *ElementRegistrationError) Error() string { return e.Message }

// Unwrap returns the repository fault that caused the error.
func (e *ElementRegistrationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrElementRegistration.
func (e *ElementRegistrationError) Is(target error) bool { return target == ErrElementRegistration }
