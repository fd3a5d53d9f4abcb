package main

import (
	"context"
	"flag"
	"strconv"
	"strings"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/catalog/search"
	"github.com/BurntSushi/cinedex/hangul"
	"github.com/BurntSushi/cinedex/tpl"
)

var (
	flagFormatFull  = false
	flagSearchMode  = ""
	flagSearchLimit = search.DefaultPageSize
)

var cmdSearch = &command{
	name:            "search",
	positionalUsage: "query",
	shortHelp:       "searches the catalog for movies",
	help: `
Searches the catalog and prints one page of matching movies. Words in the
query are searched for in the Korean and English titles of movies. Other
filters are written as commands in curly braces. For example:

    cinedex search {d:봉준호} {genre:드라마} {sort:year desc}

The commands are:

` + searchCommandHelp(),
	flags: flag.NewFlagSet("search", flag.ExitOnError),
	run:   searchMovies,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagSearchMode, "index-mode", flagSearchMode,
			"How Hangul index letters treat tense consonants: 'merged'\n"+
				"lists 까 under ㄱ, 'simple' doesn't. Defaults to the\n"+
				"index_mode of the config file.")
		c.flags.IntVar(&flagSearchLimit, "limit", flagSearchLimit,
			"The number of movies on each page. {limit:n} overrides this.")
	},
}

var cmdShow = &command{
	name:            "show",
	positionalUsage: "mid",
	shortHelp:       "shows everything known about one movie",
	help: `
Shows a movie along with its directors, genres and nations. With -full, its
production companies are shown too.
`,
	flags: flag.NewFlagSet("show", flag.ExitOnError),
	run:   show,
	addFlags: func(c *command) {
		c.flags.BoolVar(&flagFormatFull, "full", flagFormatFull,
			"When set, as much information will be shown as possible.")
	},
}

func searchCommandHelp() string {
	var lines []string
	for _, cmd := range search.Commands() {
		lines = append(lines, sf("    {%s}\n        %s", cmd[0], cmd[1]))
	}
	return strings.Join(lines, "\n")
}

func searchMovies(c *command) bool {
	c.assertLeastNArg(1)
	mode := flagSearchMode
	if len(mode) == 0 {
		mode = c.config().Web.IndexMode
	}
	indexMode, err := hangul.ParseMode(mode)
	if err != nil {
		pef("%s", err)
		return false
	}

	db := openDb(c.dbinfo())
	defer closeDb(db)

	s := search.New(db).PageSize(flagSearchLimit).IndexMode(indexMode)
	if err := s.Parse(strings.Join(c.flags.Args(), " ")); err != nil {
		pef("%s", err)
		return false
	}

	page, err := s.Results(context.Background())
	if err != nil {
		pef("%s", err)
		return false
	}
	if page.Total == 0 {
		pef("No movies found.")
		return true
	}
	c.tplExec(c.tpl("search_result"), tpl.Formatted{X: page})
	return true
}

func show(c *command) bool {
	c.assertNArg(1)
	mid, err := strconv.ParseInt(c.flags.Arg(0), 10, 64)
	if err != nil {
		pef("Invalid movie id '%s'.", c.flags.Arg(0))
		return false
	}

	db := openDb(c.dbinfo())
	defer closeDb(db)

	d, err := db.DetailsByID(context.Background(), mid)
	if err == catalog.ErrNotFound {
		pef("No movie with id %d.", mid)
		return false
	} else if err != nil {
		pef("%s", err)
		return false
	}
	fmtd := tpl.Formatted{
		X: d,
		A: tpl.Attrs{"Full": flagFormatFull},
	}
	c.tplExec(c.tpl("movie_info"), fmtd)
	return true
}
