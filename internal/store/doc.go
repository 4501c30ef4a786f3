// Package store defines the persistence contracts used by the service layer.
// The generic Repository interface abstracts the underlying storage mechanism
// so that services can be instantiated over any backend (PostgreSQL, SQLite,
// or an in-memory fake in tests) without depending on its details.
package store
