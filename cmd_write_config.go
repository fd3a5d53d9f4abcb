package main

import (
	"flag"
	"os"
	path "path/filepath"
	"strings"

	"github.com/BurntSushi/cinedex/tpl"
)

var flagConfigOverwrite = false

var defaultConfig = `
# The 'driver' is the type of relational database that you're using.
# For SQLite, the driver name is 'sqlite'. (If cinedex was built with the
# 'cgo_sqlite' tag, then 'sqlite3' is also available.)
# For PostgreSQL, the driver name is 'postgres'.
# For MySQL, the driver name is 'mysql'. cinedex will not create tables in a
# MySQL database, so the schema must already exist.
driver = "sqlite"

# The data source specifies which database to connect to. For SQLite, this
# is simply a file path. If it's a relative file path, then it's interpreted
# with respect to the current working directory of wherever 'cinedex' is
# executed.
#
# If you're using a different relational database system, like PostgreSQL,
# then you will need to consult its documentation for specifying connection
# strings. Here's an example PostgreSQL connection string:
#
#     user=andrew password=XXXXXX dbname=movies sslmode=disable
#
# And a MySQL one:
#
#     andrew:XXXXXX@tcp(localhost:3306)/movies
data_source = "cinedex.sqlite"

[web]
# The address that 'cinedex serve' listens on.
listen = ":8000"

# The number of movies on each page of search results.
page_size = 10

# How the Hangul index letters treat titles starting with a tense consonant
# (ㄲ, ㄸ, ㅃ, ㅆ, ㅉ). With 'merged', 까치 is listed under ㄱ. With 'simple',
# it isn't listed under any letter.
index_mode = "merged"

# How long the genres, nations, types and states offered by the search form
# are cached.
facet_ttl = "5m"

# When enabled, the SQL of every search is logged at the debug level.
debug = false

[log]
# One of 'debug', 'info', 'warn' or 'error'.
level = "info"

# Either 'text' or 'json'.
format = "text"
`

var cmdWriteConfig = &command{
	name:            "write-config",
	positionalUsage: "[ dir ]",
	shortHelp:       "write a default configuration",
	help: `
Writes the default configuration to $XDG_CONFIG_HOME/cinedex or to
the directory argument given.

If no argument is given and $XDG_CONFIG_HOME is not set, then the configuration
is written to $HOME/.config/cinedex/.

The configuration includes a TOML file for specifying database connection
and server parameters, a template file used to control the output of the
command line (format.tpl) and the templates of the web search page
(search.html).
`,
	flags: flag.NewFlagSet("write-config", flag.ExitOnError),
	run:   writeConfig,
	addFlags: func(c *command) {
		c.flags.BoolVar(&flagConfigOverwrite, "overwrite", flagConfigOverwrite,
			"When set, the config file will be written regardless of\n"+
				"whether one exists or not.")
	},
}

func writeConfig(c *command) bool {
	var dir string
	if arg := strings.TrimSpace(c.flags.Arg(0)); len(arg) > 0 {
		dir = arg
	} else {
		var err error
		if dir, err = configDir(); err != nil {
			pef("Could not find configuration directory: %s", err)
			return false
		}
	}
	if err := writeConfigDir(dir, flagConfigOverwrite); err != nil {
		pef("%s", err)
		return false
	}
	logf("Wrote configuration to '%s'.", dir)
	return true
}

// writeConfigDir writes the default configuration and templates to dir.
func writeConfigDir(dir string, overwrite bool) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return ef("Could not create '%s': %s", dir, err)
	}
	files := []struct {
		name, contents string
	}{
		{"config.toml", defaultConfig},
		{"format.tpl", tpl.Defaults},
		{"search.html", tpl.HTMLDefaults},
	}

	// Don't clobber the user's config unexpectedly!
	if !overwrite {
		for _, f := range files {
			fpath := path.Join(dir, f.name)
			if _, err := os.Stat(fpath); !os.IsNotExist(err) {
				return ef("File at '%s' already exists. Remove or use "+
					"-overwrite.", fpath)
			}
		}
	}
	for _, f := range files {
		fpath := path.Join(dir, f.name)
		contents := []byte(strings.TrimSpace(f.contents) + "\n")
		if err := os.WriteFile(fpath, contents, 0666); err != nil {
			return ef("Could not write '%s': %s", fpath, err)
		}
	}
	return nil
}
