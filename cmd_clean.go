package main

import (
	"context"
	"flag"
)

var cmdClean = &command{
	name:      "clean",
	shortHelp: "empties the database so that 'load' starts from scratch",
	help:      "",
	flags:     flag.NewFlagSet("clean", flag.ExitOnError),
	run:       clean,
}

func clean(c *command) bool {
	db := openDb(c.dbinfo())
	defer closeDb(db)

	if err := db.Clean(context.Background()); err != nil {
		pef("Error cleaning database: %s", err)
		return false
	}
	logf("Removed every movie from the catalog.")
	return true
}
