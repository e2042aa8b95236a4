package dialect

import "strings"

// Dialect names.
const (
	// MySQL is the MySQL/MariaDB dialect.
	MySQL = "mysql"
	// SQLite is the SQLite dialect.
	SQLite = "sqlite"
	// Postgres is the PostgreSQL dialect.
	Postgres = "postgres"
)

// Detect returns the base dialect for a driver name, tolerating wrapped or
// suffixed names such as "sqlite3" or an instrumented "mysql+otel". Unknown
// names are returned unchanged.
func Detect(name string) string {
	for _, d := range []string{MySQL, SQLite, Postgres} {
		if strings.HasPrefix(name, d) {
			return d
		}
	}
	return name
}

// Known reports whether name maps to a supported dialect.
func Known(name string) bool {
	switch Detect(name) {
	case MySQL, SQLite, Postgres:
		return true
	}
	return false
}
