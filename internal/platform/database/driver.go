package database

import (
	"fmt"
	"strings"

	"github.com/phrazzld/passeio-api/internal/platform/postgres"
	"github.com/phrazzld/passeio-api/internal/platform/sqlite"
	"github.com/phrazzld/passeio-api/internal/platform/sqlstore"
)

// Driver identifies a supported database backend.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// DefaultSQLitePath is used when no database URL is configured.
const DefaultSQLitePath = "passeio.db"

// DetectDriver infers the backend from a database URL. An empty URL selects
// SQLite with DefaultSQLitePath.
func DetectDriver(url string) Driver {
	lower := strings.ToLower(url)
	switch {
	case url == "":
		return DriverSQLite
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "file:"), strings.HasPrefix(lower, ":memory:"):
		return DriverSQLite
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return DriverSQLite
	default:
		return DriverPostgres
	}
}

// Dialect returns the sqlstore dialect for the driver.
func (d Driver) Dialect() (sqlstore.Dialect, error) {
	switch d {
	case DriverPostgres:
		return postgres.Dialect{}, nil
	case DriverSQLite:
		return sqlite.Dialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", string(d))
	}
}

// sqlDriverName is the database/sql driver name to open.
func (d Driver) sqlDriverName() string {
	if d == DriverSQLite {
		return sqlite.DriverName
	}
	return postgres.DriverName
}

// gooseDialect is the goose dialect name.
func (d Driver) gooseDialect() string {
	if d == DriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}
