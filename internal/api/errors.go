package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/passeio-api/internal/service/crud"
	"github.com/phrazzld/passeio-api/internal/store"
)

// MapErrorToStatusCode maps service errors to HTTP status codes without
// exposing their types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, crud.ErrBadRequest),
		errors.Is(err, store.ErrInvalidID):
		return http.StatusBadRequest

	case errors.Is(err, crud.ErrElementNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Deleting a referenced row surfaces as an untranslated integrity violation.
	case errors.Is(err, crud.ErrElementRegistration),
		errors.Is(err, store.ErrIntegrityViolation):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message sent to clients for err.
// Bad request and not found messages are produced by the service and safe
// to return verbatim; integrity violations are summarized because the
// underlying driver message names tables and constraints.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var badRequest *crud.BadRequestError
	var notFound *crud.ElementNotFoundError
	switch {
	case errors.As(err, &badRequest):
		return badRequest.Message
	case errors.As(err, &notFound):
		return notFound.Message
	case errors.Is(err, store.ErrDuplicate):
		return "Element already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Element violates a data constraint"
	case errors.Is(err, store.ErrIntegrityViolation):
		return "Element could not be registered"
	case errors.Is(err, store.ErrInvalidID):
		return crud.InvalidIDMessage
	case errors.Is(err, store.ErrNotFound):
		return "Element not found"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message naming
// the offending fields. Field names are JSON names when the error comes from
// shared.ValidateRequest.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), getValidationTagMessage(fe.Tag())))
	}
	return "Invalid " + strings.Join(parts, ", ")
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min", "gt", "gte":
		return "too small"
	case "max", "lt", "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
