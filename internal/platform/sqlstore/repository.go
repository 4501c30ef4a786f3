package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/phrazzld/passeio-api/internal/platform/logger"
	"github.com/phrazzld/passeio-api/internal/redact"
	"github.com/phrazzld/passeio-api/internal/store"
)

// Repository implements store.Repository for the entity described by a Table.
type Repository[E any, ID comparable] struct {
	db      store.DBTX
	table   Table[E, ID]
	dialect Dialect
	queries queries
	logger  *slog.Logger
	now     func() time.Time
}

var _ store.Repository[struct{}, int] = (*Repository[struct{}, int])(nil)

// New creates a Repository. db may be a *sql.DB or a *sql.Tx.
// If logger is nil, a default logger will be used.
func New[E any, ID comparable](
	db store.DBTX,
	dialect Dialect,
	table Table[E, ID],
	logger *slog.Logger,
) (*Repository[E, ID], error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if dialect == nil {
		return nil, errors.New("dialect cannot be nil")
	}
	if err := table.validate(); err != nil {
		return nil, fmt.Errorf("invalid table %q: %w", table.Name, err)
	}
	if !slices.ContainsFunc(table.Columns, func(c string) bool { return !slices.Contains(table.Immutable, c) }) {
		return nil, fmt.Errorf("invalid table %q: no updatable columns", table.Name)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Repository[E, ID]{
		db:      db,
		table:   table,
		dialect: dialect,
		queries: buildQueries(table.Name, table.IDColumn, table.Columns, table.Immutable, table.OrderBy, dialect),
		logger: logger.With(
			slog.String("component", "sql_repository"),
			slog.String("table", table.Name),
			slog.String("dialect", dialect.Name()),
		),
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// WithTx returns a copy of the repository that runs its statements on tx.
func (r *Repository[E, ID]) WithTx(tx *sql.Tx) *Repository[E, ID] {
	clone := *r
	clone.db = tx
	return &clone
}

// WithClock returns a copy of the repository that timestamps saves with now.
func (r *Repository[E, ID]) WithClock(now func() time.Time) *Repository[E, ID] {
	clone := *r
	clone.now = now
	return &clone
}

// FindAll implements store.Repository.FindAll.
func (r *Repository[E, ID]) FindAll(ctx context.Context) ([]E, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	rows, err := r.db.QueryContext(ctx, r.queries.findAll)
	if err != nil {
		return nil, r.fail(ctx, log, "find_all", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	entities := make([]E, 0)
	for rows.Next() {
		entity, err := r.table.Scan(rows)
		if err != nil {
			return nil, r.fail(ctx, log, "find_all", "scan failed", err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, log, "find_all", "iteration failed", err)
	}

	log.Debug("entities listed", slog.Int("count", len(entities)))
	return entities, nil
}

// Save implements store.Repository.Save as a single upsert.
// Entities with a zero id receive one from Table.NewID first.
func (r *Repository[E, ID]) Save(ctx context.Context, entity E) (E, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)
	var empty E
	var zero ID

	if r.table.IDOf(entity) == zero {
		if r.table.NewID == nil {
			return empty, store.NewStoreError(r.table.Name, "save", "entity has no id", store.ErrInvalidID)
		}
		entity = r.table.WithID(entity, r.table.NewID())
	}
	if r.table.Prepare != nil {
		entity = r.table.Prepare(entity, r.now())
	}

	args := append([]any{r.table.IDOf(entity)}, r.table.Values(entity)...)
	saved, err := r.table.Scan(r.db.QueryRowContext(ctx, r.queries.upsert, args...))
	if err != nil {
		return empty, r.fail(ctx, log, "save", "upsert failed", err)
	}

	log.Debug("entity saved", slog.String("id", fmt.Sprint(r.table.IDOf(saved))))
	return saved, nil
}

// DeleteByID implements store.Repository.DeleteByID.
func (r *Repository[E, ID]) DeleteByID(ctx context.Context, id ID) error {
	log := logger.FromContextOrDefault(ctx, r.logger)

	var zero ID
	if id == zero {
		return store.NewStoreError(r.table.Name, "delete", "id is empty", store.ErrInvalidID)
	}

	result, err := r.db.ExecContext(ctx, r.queries.deleteBy, id)
	if err != nil {
		return r.fail(ctx, log, "delete", "delete failed", err)
	}
	if err := CheckRowsAffected(result); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("entity to delete not found", slog.String("id", fmt.Sprint(id)))
			return store.NewStoreError(r.table.Name, "delete", fmt.Sprintf("no row with id %v", id), err)
		}
		return r.fail(ctx, log, "delete", "rows affected unavailable", err)
	}

	log.Debug("entity deleted", slog.String("id", fmt.Sprint(id)))
	return nil
}

// FindByID implements store.Repository.FindByID.
func (r *Repository[E, ID]) FindByID(ctx context.Context, id ID) (E, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)
	var empty E

	var zero ID
	if id == zero {
		return empty, store.NewStoreError(r.table.Name, "find", "id is empty", store.ErrInvalidID)
	}

	entity, err := r.table.Scan(r.db.QueryRowContext(ctx, r.queries.findByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("entity not found", slog.String("id", fmt.Sprint(id)))
			return empty, store.NewStoreError(r.table.Name, "find", fmt.Sprintf("no row with id %v", id), store.ErrNotFound)
		}
		return empty, r.fail(ctx, log, "find", "query failed", err)
	}
	return entity, nil
}

// fail maps a driver error through the dialect and wraps it with context.
// Integrity violations are expected outcomes of a save and are logged at warn.
func (r *Repository[E, ID]) fail(ctx context.Context, log *slog.Logger, operation, message string, err error) error {
	mapped := r.dialect.MapError(err)

	level := slog.LevelError
	if store.IsIntegrityViolation(mapped) || store.IsNotFoundError(mapped) {
		level = slog.LevelWarn
	}
	log.Log(ctx, level, "repository operation failed",
		slog.String("operation", operation),
		slog.String("error", redact.Error(err)))

	return store.NewStoreError(r.table.Name, operation, message, mapped)
}

// CheckRowsAffected returns store.ErrNotFound when a statement touched no rows.
func CheckRowsAffected(result sql.Result) error {
	if result == nil {
		return errors.New("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
