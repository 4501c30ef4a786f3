package service

import "errors"

// Sentinel errors returned while constructing services.
var (
	// ErrNilRepository is returned when a service is built without a repository.
	ErrNilRepository = errors.New("repository cannot be nil")

	// ErrNilLogger is returned when a service is built without a logger.
	ErrNilLogger = errors.New("logger cannot be nil")
)
