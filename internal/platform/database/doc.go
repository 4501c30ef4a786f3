// Package database opens the application's *sql.DB for PostgreSQL or SQLite,
// picks the matching sqlstore dialect and applies the embedded goose
// migrations.
package database
