package sqlstore

import (
	"errors"
	"time"
)

// Scanner is implemented by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Table describes how an entity type is stored.
type Table[E any, ID comparable] struct {
	// Name is the table name.
	Name string

	// IDColumn is the primary key column.
	IDColumn string

	// Columns lists the non-id columns in the order produced by Values
	// and consumed by Scan (after the id).
	Columns []string

	// Immutable lists columns that keep their stored value when an
	// existing row is updated, e.g. created_at.
	Immutable []string

	// OrderBy is the ORDER BY clause used by FindAll. Defaults to IDColumn.
	OrderBy string

	// IDOf returns the id of an entity.
	IDOf func(E) ID

	// WithID returns a copy of the entity carrying id.
	WithID func(E, ID) E

	// NewID generates an id for entities saved with a zero id.
	// When nil, saving such an entity fails with store.ErrInvalidID.
	NewID func() ID

	// Values returns the column values of an entity in Columns order.
	Values func(E) []any

	// Scan reads the id followed by Columns into an entity.
	Scan func(Scanner) (E, error)

	// Prepare, when set, is applied before each save with the current time.
	Prepare func(E, time.Time) E
}

func (t Table[E, ID]) validate() error {
	switch {
	case t.Name == "":
		return errors.New("table name is required")
	case t.IDColumn == "":
		return errors.New("id column is required")
	case len(t.Columns) == 0:
		return errors.New("at least one column is required")
	case t.IDOf == nil || t.WithID == nil:
		return errors.New("id accessors are required")
	case t.Values == nil || t.Scan == nil:
		return errors.New("values and scan functions are required")
	}
	return nil
}
