// Package sqlstore implements store.Repository over database/sql.
//
// A Repository is described by a Table (columns, id accessors, scan and
// value functions) and a Dialect (placeholder syntax and driver error
// mapping), so the same upsert/select/delete code serves every entity on
// both PostgreSQL and SQLite.
package sqlstore
