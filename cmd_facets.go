package main

import (
	"context"
	"flag"

	"github.com/BurntSushi/cinedex/tpl"
)

var cmdFacets = &command{
	name:      "facets",
	shortHelp: "lists the types, states, genres and nations in the catalog",
	help: `
Lists the distinct movie types, production states, genres and nations in the
catalog. These are the values that can be given to the {type:...},
{state:...}, {genre:...} and {nation:...} search commands.
`,
	flags: flag.NewFlagSet("facets", flag.ExitOnError),
	run:   facets,
}

func facets(c *command) bool {
	db := openDb(c.dbinfo())
	defer closeDb(db)

	f, err := db.LoadFacets(context.Background())
	if err != nil {
		pef("%s", err)
		return false
	}
	c.tplExec(c.tpl("facets"), tpl.Formatted{X: f})
	return true
}
