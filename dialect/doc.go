// Package dialect names the database dialects a SQL-backed source can read.
//
// # Supported Dialects
//
// The following dialects are supported:
//
//   - Postgres: PostgreSQL database
//   - MySQL: MySQL/MariaDB database
//   - SQLite: SQLite database
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// Detect maps wrapped or suffixed driver names (for example an
// instrumented "sqlite3") back to their base dialect, so callers can
// register instrumented drivers without losing dialect-specific behavior.
package dialect
