package store

import "context"

// Repository is the persistence capability a CRUD service is built on.
// E is the stored entity type and ID its identifier.
//
// Implementations report failures through the sentinel errors of this package:
// ErrInvalidID for a structurally invalid id, ErrNotFound for an absent entity,
// and errors wrapping ErrIntegrityViolation when a write breaks a constraint.
// Any other error is passed through to the caller unchanged.
type Repository[E any, ID comparable] interface {
	// FindAll returns every stored entity in the repository's natural order.
	FindAll(ctx context.Context) ([]E, error)

	// Save inserts the entity, or updates it when its id already exists,
	// and returns the stored state. The returned entity may carry a
	// generated id.
	Save(ctx context.Context, entity E) (E, error)

	// DeleteByID removes the entity with the given id.
	// Returns ErrInvalidID or ErrNotFound.
	DeleteByID(ctx context.Context, id ID) error

	// FindByID retrieves the entity with the given id.
	// Returns ErrInvalidID or ErrNotFound.
	FindByID(ctx context.Context, id ID) (E, error)
}
