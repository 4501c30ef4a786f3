// Package service contains the entity services of the application. Each one
// is an instantiation of the generic crud.Service over a store.Repository,
// together with the DTO exposed to callers and the mapper between the DTO
// and the domain entity.
//
// Services translate storage faults into the crud error kinds:
// crud.ErrBadRequest, crud.ErrElementNotFound and crud.ErrElementRegistration.
// Any other fault is returned unchanged.
package service
