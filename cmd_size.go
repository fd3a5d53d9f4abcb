package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/BurntSushi/cinedex/catalog"
)

var cmdSize = &command{
	name:      "size",
	shortHelp: "lists size of tables and total size of database",
	help:      "",
	flags:     flag.NewFlagSet("size", flag.ExitOnError),
	run:       size,
}

func size(c *command) bool {
	driver, dsn := c.dbinfo()
	db := openDb(driver, dsn)
	defer closeDb(db)

	ctx := context.Background()
	tw := tabwriter.NewWriter(os.Stdout, 0, 2, 4, ' ', 0)
	for _, table := range catalog.Tables {
		s, err := tableSize(ctx, db, table)
		if err != nil {
			pef("%s", err)
			return false
		}
		fmt.Fprintf(tw, "%s\t%s\n", table, s)
	}
	total, err := databaseSize(ctx, db, dsn)
	if err != nil {
		pef("%s", err)
		return false
	}
	fmt.Fprintf(tw, "total\t%s\n", total)
	tw.Flush()
	return true
}

func tableSize(ctx context.Context, db *catalog.DB, name string) (string, error) {
	count, err := db.Count(ctx, sf("SELECT COUNT(*) AS count FROM %s", name))
	if err != nil {
		return "", errors.Wrapf(err, "could not count rows of %s", name)
	}

	var q string
	switch db.Driver {
	case "postgres":
		q = sf("SELECT pg_size_pretty(pg_relation_size('%s'))", name)
	case "mysql":
		q = sf(`
			SELECT CONCAT(ROUND((data_length + index_length) / 1024), ' kB')
			FROM information_schema.tables
			WHERE table_schema = DATABASE() AND table_name = '%s'`, name)
	default:
		return sf("%d rows", count), nil
	}
	var size string
	if err := db.QueryRowContext(ctx, q).Scan(&size); err != nil {
		return "", errors.Wrapf(err, "could not find size of %s", name)
	}
	return sf("%d rows (%s)", count, size), nil
}

func databaseSize(ctx context.Context, db *catalog.DB, dsn string) (string, error) {
	var q string
	switch db.Driver {
	case "postgres":
		q = "SELECT pg_size_pretty(pg_database_size(current_database()))"
	case "mysql":
		q = `
			SELECT CONCAT(ROUND(SUM(data_length + index_length) / 1024), ' kB')
			FROM information_schema.tables
			WHERE table_schema = DATABASE()`
	default:
		fi, err := os.Stat(sqlitePath(dsn))
		if err != nil {
			return "", err
		}
		return prettyFileSize(fi.Size()), nil
	}
	var size string
	if err := db.QueryRowContext(ctx, q).Scan(&size); err != nil {
		return "", errors.Wrap(err, "could not find size of database")
	}
	return size, nil
}

func prettyFileSize(bytes int64) string {
	cutoff := int64(1024 * 2)
	kb, mb, gb := int64(1024), int64(1024*1024), int64(1024*1024*1024)
	if bytes < cutoff {
		return sf("%d bytes", bytes)
	}
	kbytes := bytes / kb
	if kbytes < cutoff {
		return sf("%d kB", kbytes)
	}
	mbytes := bytes / mb
	if mbytes < cutoff {
		return sf("%d MB", mbytes)
	}
	return sf("%d GB", bytes/gb)
}

// sqlitePath strips the URI scheme and parameters from an SQLite data source.
func sqlitePath(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		dsn = dsn[:i]
	}
	return dsn
}
