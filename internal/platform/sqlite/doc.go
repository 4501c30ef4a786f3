// Package sqlite provides the SQLite dialect for sqlstore repositories, backed
// by the pure Go modernc.org/sqlite driver.
package sqlite
