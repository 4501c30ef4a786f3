// Package testdb provides migrated databases for tests.
//
// NewSQLite returns a private in-memory SQLite database and never skips.
// NewPostgres connects to PASSEIO_TEST_DATABASE_URL and skips the test when
// the variable is unset. Use WithTx against a shared PostgreSQL database so
// every test rolls its changes back:
//
//	func TestGuideRepository(t *testing.T) {
//	    db := testdb.NewPostgres(t)
//	    testdb.WithTx(t, db.DB, func(t *testing.T, tx *sql.Tx) {
//	        repo := newGuideRepo(t, db).WithTx(tx)
//	        // ...
//	    })
//	}
package testdb
