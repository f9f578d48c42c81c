// Package model defines shared data types used across the stock ETL pipeline.
//
// All types mirror the stock_schema.stock_data table in Postgres.
//
// Conventions:
//   - Raw prices: float64 rounded to 2 decimal places; 0 marks an injected
//     invalid record and is filtered during transformation
//   - Cleaned prices and pct_change: shopspring decimals, matching the
//     NUMERIC columns in the database
//   - Timestamps: time.Time in UTC, serialized as ISO-8601 strings
package model
