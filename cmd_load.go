package main

import (
	"context"
	"flag"
	"io"

	"github.com/BurntSushi/cinedex/catalog"
)

var (
	flagLoadDownload = ""
	flagLoadClean    = false
)

var cmdLoad = &command{
	name:            "load",
	positionalUsage: "( file | dir | http://... | ftp://... )",
	shortHelp:       "populates the database with a catalog dump",
	help: `
This command loads the current database with the movies in the catalog dump
given. A dump has one JSON object per line, like this one:

    {"mid": 1, "movie_name": "기생충", "movie_engname": "Parasite",
     "create_year": 2019, "movie_type": "장편", "movie_state": "개봉",
     "genres": ["드라마"], "companies": ["바른손이앤에이"],
     "directors": ["봉준호"], "nations": ["한국"]}

The dump may be a local file, a local directory, an HTTP URL or an FTP URL.
Directories and URLs that don't name a file must contain a dump called
'` + dumpName + `'. Dumps may be compressed with gzip.

Movies are added to those already in the catalog. Movies whose identifier is
already used are skipped, and directors are matched by name. Use -clean (or
the 'clean' command) to start from scratch. Either every movie in the dump is
loaded or none are.
`,
	flags: flag.NewFlagSet("load", flag.ExitOnError),
	run:   load,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagLoadDownload, "download", flagLoadDownload,
			"When set, the dump retrieved will be stored in the file\n"+
				"specified. Then cinedex will quit.")
		c.flags.BoolVar(&flagLoadClean, "clean", flagLoadClean,
			"When set, every movie is removed from the catalog before\n"+
				"loading.")
	},
}

func load(c *command) bool {
	c.assertNArg(1)
	fetch, err := newFetcher(c.flags.Arg(0))
	if err != nil {
		pef("%s", err)
		return false
	}

	if len(flagLoadDownload) > 0 {
		logf("Downloading %s...", c.flags.Arg(0))
		if err := download(fetch, flagLoadDownload); err != nil {
			pef("%s", err)
			return false
		}
		return true
	}

	driver, dsn := c.dbinfo()
	stats, err := loadDump(driver, dsn, gzipFetcher{fetch}, flagLoadClean)
	if err != nil {
		pef("Could not load catalog: %s", err)
		return false
	}
	logf("Loaded %d movies with %d new directors (%d skipped).",
		stats.Movies, stats.Directors, stats.Skipped)
	return true
}

// loadDump reads a dump and loads it into the database.
func loadDump(
	driver, dsn string,
	fetch fetcher,
	clean bool,
) (catalog.LoadStats, error) {
	r, err := fetch.dump(dumpName)
	if err != nil {
		return catalog.LoadStats{}, err
	}
	defer r.Close()

	db, err := catalog.Open(driver, dsn)
	if err != nil {
		return catalog.LoadStats{}, err
	}
	defer db.Close()

	ctx := context.Background()
	if clean {
		logf("Removing every movie from the catalog...")
		if err := db.Clean(ctx); err != nil {
			return catalog.LoadStats{}, err
		}
	}
	return db.Load(ctx, r, logf)
}

// download copies a dump, exactly as it was retrieved, to a local file.
func download(fetch fetcher, fpath string) error {
	r, err := fetch.dump(dumpName)
	if err != nil {
		return err
	}
	defer r.Close()

	f := createFile(fpath)
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return ef("Could not save to '%s': %s", fpath, err)
	}
	return f.Close()
}
