package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/BurntSushi/cinedex/web"
)

var flagServeListen = ""

var cmdServe = &command{
	name:      "serve",
	shortHelp: "serves the movie search page and JSON API over HTTP",
	help: `
Starts an HTTP server for searching the catalog. The search page is at
/movies/search. The JSON API is at /api/movies/search, /api/movies/facets and
/api/movies/{mid}. Prometheus metrics are at /metrics.

The listen address, page size, index mode and logging are set in the [web]
and [log] sections of the configuration file. The HTML templates may be
overridden by writing 'search.html' in the configuration directory.

The server stops gracefully on SIGINT or SIGTERM.
`,
	flags: flag.NewFlagSet("serve", flag.ExitOnError),
	run:   serve,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagServeListen, "listen", flagServeListen,
			"Overrides the address to listen on, e.g., ':8000'.")
	},
}

func serve(c *command) bool {
	conf := c.config()
	db := openDb(c.dbinfo())
	defer closeDb(db)

	log, err := web.NewLogger(os.Stderr, conf.Log.Level, conf.Log.Format)
	if err != nil {
		pef("%s", err)
		return false
	}
	sconf, err := conf.serverConfig()
	if err != nil {
		pef("%s", err)
		return false
	}
	srv, err := web.New(db, sconf, c.htmlTpls(), log)
	if err != nil {
		pef("%s", err)
		return false
	}

	addr := conf.Web.Listen
	if len(flagServeListen) > 0 {
		addr = flagServeListen
	}
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		log.Error("server failed", "error", err)
		return false
	}
	return true
}
