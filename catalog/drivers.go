package catalog

import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Drivers lists the database drivers this package knows how to talk to.
// "sqlite3" is only available in binaries built with the cgo_sqlite tag.
var Drivers = []string{"sqlite", "sqlite3", "postgres", "mysql"}

// IsSQLite returns true if the driver name refers to one of the SQLite
// drivers.
func IsSQLite(driver string) bool {
	return driver == "sqlite" || driver == "sqlite3"
}
