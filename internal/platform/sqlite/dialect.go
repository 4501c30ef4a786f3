package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/passeio-api/internal/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DriverName is the database/sql driver name registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Dialect is the SQLite sqlstore.Dialect.
type Dialect struct{}

// Name implements sqlstore.Dialect.
func (Dialect) Name() string { return "sqlite" }

// Placeholder implements sqlstore.Dialect with positional ? parameters.
func (Dialect) Placeholder(int) string { return "?" }

// MapError implements sqlstore.Dialect.
func (Dialect) MapError(err error) error { return MapError(err) }

// MapError maps SQLite errors to the store sentinel errors. Constraint
// failures are recognized by their extended result code.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	switch {
	case constraintCode(err) == 0:
		return err
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%w: foreign key violation: %v", store.ErrInvalidEntity, err)
	default:
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
}

// IsUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure.
func IsUniqueViolation(err error) bool {
	code := constraintCode(err)
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

// IsForeignKeyViolation reports whether err is a FOREIGN KEY constraint failure.
func IsForeignKeyViolation(err error) bool {
	return constraintCode(err) == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

// constraintCode returns the extended result code of a constraint failure,
// or 0 when err is not one. Drivers that only report the primary code are
// classified by message.
func constraintCode(err error) int {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code&0xff != sqlite3.SQLITE_CONSTRAINT {
			return 0
		}
		if code == sqlite3.SQLITE_CONSTRAINT {
			return codeFromMessage(sqliteErr.Error())
		}
		return code
	}
	return codeFromMessage(err.Error())
}

func codeFromMessage(msg string) int {
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return sqlite3.SQLITE_CONSTRAINT_UNIQUE
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	case strings.Contains(msg, "CHECK constraint failed"):
		return sqlite3.SQLITE_CONSTRAINT_CHECK
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return sqlite3.SQLITE_CONSTRAINT_NOTNULL
	}
	return 0
}
