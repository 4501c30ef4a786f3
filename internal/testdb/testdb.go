package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/phrazzld/passeio-api/internal/platform/database"
	"github.com/phrazzld/passeio-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds database setup in tests.
const TestTimeout = 5 * time.Second

// PostgresURLEnv names the variable holding the PostgreSQL test database URL.
const PostgresURLEnv = "PASSEIO_TEST_DATABASE_URL"

// NewSQLite opens a migrated in-memory SQLite database that is closed when
// the test finishes.
func NewSQLite(t *testing.T) *database.DB {
	t.Helper()
	return open(t, ":memory:")
}

// NewPostgres opens the PostgreSQL test database and applies migrations.
// The test is skipped when PASSEIO_TEST_DATABASE_URL is not set.
func NewPostgres(t *testing.T) *database.DB {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skip(PostgresURLEnv + " not set - skipping integration test")
	}
	return open(t, url)
}

func open(t *testing.T, url string) *database.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := database.Open(ctx, database.Config{URL: url}, logger.Discard())
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	err = database.Migrate(ctx, db.DB, db.Driver, database.MigrateUp, logger.Discard())
	require.NoError(t, err, "Failed to run migrations")

	return db
}

// WithTx runs fn inside a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
