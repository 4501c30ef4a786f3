package sqlstore

// Dialect captures the differences between SQL backends that matter to Repository.
type Dialect interface {
	// Name identifies the backend in logs, e.g. "postgres".
	Name() string

	// Placeholder returns the bind parameter for the n-th argument (1-based).
	Placeholder(n int) string

	// MapError converts a driver error into the store sentinel errors.
	// Errors without a mapping are returned unchanged.
	MapError(err error) error
}
