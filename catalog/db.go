package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/migration"
	"github.com/pkg/errors"
)

var (
	sf = fmt.Sprintf
	ef = fmt.Errorf
)

// Tables lists every catalog table. Tables referring to other tables come
// first, so that deleting in this order never violates a foreign key.
var Tables = []string{
	"casting", "movie_genre", "movie_company", "movie_nation",
	"director", "movie",
}

// DB represents a database containing a movie catalog. The underlying
// database connection is exposed so that clients may run their own queries.
type DB struct {
	*sql.DB
	Driver string
}

// Open opens the database identified by driver and dsn. When the driver has
// migrations (SQLite and PostgreSQL), the schema is brought up to date.
func Open(driver, dsn string) (*DB, error) {
	var db *sql.DB
	var err error
	if ms, ok := migrations[driver]; ok {
		db, err = migration.Open(driver, dsn, ms)
	} else {
		db, err = sql.Open(driver, dsn)
		if err == nil {
			err = db.Ping()
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s database", driver)
	}
	if driver == "postgres" {
		if _, err := db.Exec("SET timezone = UTC"); err != nil {
			return nil, errors.Wrap(err, "could not set timezone to UTC")
		}
	}
	return &DB{db, driver}, nil
}

// Rebind rewrites the '?' placeholders in q to the syntax of the database's
// driver.
func (db *DB) Rebind(q string) string {
	return Rebind(db.Driver, q)
}

// Rebind rewrites the '?' placeholders in q for the driver given. Only
// PostgreSQL needs rewriting ($1, $2, ...). Queries must not contain a
// literal '?'.
func Rebind(driver, q string) string {
	if driver != "postgres" {
		return q
	}
	var b strings.Builder
	n := 0
	for i := 0; i < len(q); i++ {
		if q[i] != '?' {
			b.WriteByte(q[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// Binary returns an expression for the text column given that compares in
// code point order, regardless of the collation the column was created with.
// Hangul index ranges depend on this.
func (db *DB) Binary(col string) string {
	switch db.Driver {
	case "postgres":
		return col + ` COLLATE "C"`
	case "mysql":
		return "BINARY " + col
	}
	return col // SQLite compares with memcmp, and UTF-8 preserves order.
}

// Clean deletes all data in the catalog.
func (db *DB) Clean(ctx context.Context) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range Tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return errors.Wrapf(err, "could not clean table %s", table)
		}
	}
	return tx.Commit()
}

// Empty returns true if and only if the database does not have any data.
// (At the moment, it determines this by only checking the movie table.)
func (db *DB) Empty(ctx context.Context) bool {
	n, err := db.Count(ctx, "SELECT COUNT(*) FROM movie")
	return err != nil || n == 0
}

// Count runs a query returning a single integer, like "SELECT COUNT(*) ...".
func (db *DB) Count(ctx context.Context, q string, args ...interface{}) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, db.Rebind(q), args...).Scan(&n)
	if err != nil {
		return 0, errors.Wrap(err, "count query failed")
	}
	return n, nil
}

// texts runs a query returning one text column and collects the values.
func (db *DB) texts(ctx context.Context, q string, args ...interface{}) ([]string, error) {
	rows, err := db.QueryContext(ctx, db.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vals []string
	for rows.Next() {
		var s sql.NullString
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		if s.Valid {
			vals = append(vals, s.String)
		}
	}
	return vals, rows.Err()
}

// Begin starts a transaction.
func (db *DB) Begin(ctx context.Context) (*Tx, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not start transaction")
	}
	return &Tx{db, false, tx}, nil
}

// Tx is a transaction on a catalog database. Commit and Rollback may be
// called more than once; only the first call does anything, so a deferred
// Rollback is safe after a Commit.
type Tx struct {
	db     *DB
	closed bool
	*sql.Tx
}

func (tx *Tx) Commit() error {
	if tx.closed {
		return nil
	}
	tx.closed = true
	return tx.Tx.Commit()
}

func (tx *Tx) Rollback() error {
	if tx.closed {
		return nil
	}
	tx.closed = true
	return tx.Tx.Rollback()
}
