//go:build cgo_sqlite

package catalog

// Built with cgo, the "sqlite3" driver is the C SQLite library.
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite
import (
	_ "github.com/mattn/go-sqlite3"
)
