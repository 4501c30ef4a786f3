// Package crud provides the generic CRUD service that concrete entity services
// are built from. A Service maps DTOs to entities with a Mapper, delegates
// storage to a store.Repository, and translates the repository's invalid-id,
// not-found and integrity-violation faults into BadRequestError,
// ElementNotFoundError and ElementRegistrationError. Every other fault is
// returned to the caller untouched.
package crud
