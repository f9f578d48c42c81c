// Package database provides the Postgres connection pool for the loader.
//
// The durable store is plain PostgreSQL: one stock_schema.stock_data table
// with a (ticker, ts) uniqueness constraint that makes loading idempotent.
// shopspring decimals are registered with pgx so NUMERIC columns round-trip
// without precision loss.
package database
