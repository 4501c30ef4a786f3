package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all repository implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidID is returned when an identifier is structurally invalid,
	// for example the zero value of its type.
	ErrInvalidID = errors.New("invalid entity id")

	// ErrIntegrityViolation is returned when a write would break a data
	// integrity rule enforced by the storage backend.
	ErrIntegrityViolation = errors.New("data integrity violation")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a guide with the same email).
	ErrDuplicate = fmt.Errorf("%w: entity already exists", ErrIntegrityViolation)

	// ErrInvalidEntity is returned when an entity violates a foreign key,
	// check or not-null constraint. Check the wrapped error for details.
	ErrInvalidEntity = fmt.Errorf("%w: invalid entity", ErrIntegrityViolation)

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIntegrityViolation reports whether err signals a data integrity violation,
// including duplicates and constraint failures.
func IsIntegrityViolation(err error) bool {
	return errors.Is(err, ErrIntegrityViolation)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "guide", "tour")
	Operation string // The operation that failed (e.g., "save", "delete")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
