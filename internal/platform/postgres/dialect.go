package postgres

import (
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// DriverName is the database/sql driver name registered by pgx.
const DriverName = "pgx"

// Dialect is the PostgreSQL sqlstore.Dialect.
type Dialect struct{}

// Name implements sqlstore.Dialect.
func (Dialect) Name() string { return "postgres" }

// Placeholder implements sqlstore.Dialect with $n parameters.
func (Dialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

// MapError implements sqlstore.Dialect.
func (Dialect) MapError(err error) error { return MapError(err) }
