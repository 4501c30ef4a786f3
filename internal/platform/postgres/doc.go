// Package postgres provides the PostgreSQL dialect for sqlstore repositories.
// It registers the pgx database/sql driver and maps PostgreSQL error codes
// onto the store package's sentinel errors.
package postgres
