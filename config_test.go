package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/cinedex/hangul"
	"github.com/BurntSushi/cinedex/tpl"
)

func writeTemp(t *testing.T, contents string) string {
	fpath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fpath, []byte(contents), 0644))
	return fpath
}

func TestReadConfigKeepsDefaults(t *testing.T) {
	conf, err := readConfig(writeTemp(t, `
driver = "postgres"
data_source = "dbname=movies sslmode=disable"

[web]
index_mode = "simple"
facet_ttl = "90s"
`))
	require.NoError(t, err)
	assert.Equal(t, "postgres", conf.Driver)
	assert.Equal(t, ":8000", conf.Web.Listen)
	assert.Equal(t, "info", conf.Log.Level)

	sconf, err := conf.serverConfig()
	require.NoError(t, err)
	assert.Equal(t, hangul.Simple, sconf.IndexMode)
	assert.Equal(t, 90*time.Second, sconf.FacetTTL)
	assert.Equal(t, 10, sconf.PageSize)
}

func TestReadConfigErrors(t *testing.T) {
	bad := []string{
		`driver = ""`,
		"[web]\nindex_mode = \"sorted\"",
		"[web]\nfacet_ttl = \"soon\"",
		`driver = `,
	}
	for _, contents := range bad {
		_, err := readConfig(writeTemp(t, contents))
		assert.Error(t, err, contents)
	}
	_, err := readConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestWriteConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cinedex")
	require.NoError(t, writeConfigDir(dir, false))

	// The commented default config is the same as the built in defaults.
	conf, err := readConfig(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConf(), conf)

	_, err = tpl.ParseText(filepath.Join(dir, "format.tpl"))
	assert.NoError(t, err)
	_, err = tpl.ParseHTML(filepath.Join(dir, "search.html"))
	assert.NoError(t, err)

	assert.Error(t, writeConfigDir(dir, false))
	assert.NoError(t, writeConfigDir(dir, true))
}

func TestPrettyFileSize(t *testing.T) {
	assert.Equal(t, "100 bytes", prettyFileSize(100))
	assert.Equal(t, "3 kB", prettyFileSize(3*1024))
	assert.Equal(t, "5 MB", prettyFileSize(5*1024*1024))
	assert.Equal(t, "3 GB", prettyFileSize(3*1024*1024*1024))
}

func TestSqlitePath(t *testing.T) {
	assert.Equal(t, "a.sqlite", sqlitePath("file:a.sqlite?_pragma=foreign_keys(1)"))
	assert.Equal(t, "/tmp/b.sqlite", sqlitePath("/tmp/b.sqlite"))
}
