package main

import (
	"os"
	path "path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BurntSushi/cinedex/hangul"
	"github.com/BurntSushi/cinedex/web"
)

type config struct {
	Driver     string
	DataSource string `toml:"data_source"`
	Web        webConfig
	Log        logConfig
}

type webConfig struct {
	Listen    string
	PageSize  int      `toml:"page_size"`
	IndexMode string   `toml:"index_mode"`
	FacetTTL  duration `toml:"facet_ttl"`
	Debug     bool
}

type logConfig struct {
	Level  string
	Format string
}

// duration is a time.Duration written as a string in TOML, like "5m".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(strings.TrimSpace(string(text)))
	return err
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func defaultConf() config {
	return config{
		Driver:     "sqlite",
		DataSource: "cinedex.sqlite",
		Web: webConfig{
			Listen:    ":8000",
			PageSize:  10,
			IndexMode: "merged",
			FacetTTL:  duration{web.DefaultFacetTTL},
		},
		Log: logConfig{Level: "info", Format: "text"},
	}
}

// readConfig reads a TOML configuration file. Keys missing from the file keep
// their default values.
func readConfig(fpath string) (config, error) {
	conf := defaultConf()
	md, err := toml.DecodeFile(fpath, &conf)
	if err != nil {
		return conf, ef("Could not read config '%s': %s", fpath, err)
	}
	for _, key := range md.Undecoded() {
		logf("Unknown key '%s' in '%s' ignored.", key, fpath)
	}
	if len(conf.Driver) == 0 || len(conf.DataSource) == 0 {
		return conf, ef("Database driver '%s' or data source '%s' cannot "+
			"be empty.", conf.Driver, conf.DataSource)
	}
	if _, err := hangul.ParseMode(conf.Web.IndexMode); err != nil {
		return conf, err
	}
	return conf, nil
}

// serverConfig translates the [web] section for the web package.
func (conf config) serverConfig() (web.Config, error) {
	mode, err := hangul.ParseMode(conf.Web.IndexMode)
	if err != nil {
		return web.Config{}, err
	}
	return web.Config{
		PageSize:  conf.Web.PageSize,
		IndexMode: mode,
		FacetTTL:  conf.Web.FacetTTL.Duration,
		Debug:     conf.Web.Debug,
	}, nil
}

// configDir returns the directory containing cinedex's configuration,
// like $XDG_CONFIG_HOME/cinedex.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return path.Join(dir, "cinedex"), nil
}

// configFile returns the path to a file in the configuration directory, or
// an error if it doesn't exist.
func configFile(name string) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	fpath := path.Join(dir, name)
	if _, err := os.Stat(fpath); err != nil {
		return "", err
	}
	return fpath, nil
}
