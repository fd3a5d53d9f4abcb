package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/internal/catalogtest"
)

type mapFetcher map[string]string

type readCloser struct {
	io.Reader
}

func (rc readCloser) Close() error {
	return nil
}

func (mf mapFetcher) dump(name string) (io.ReadCloser, error) {
	s, ok := mf[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return readCloser{strings.NewReader(s)}, nil
}

func testDsn(t *testing.T) string {
	return filepath.Join(t.TempDir(), "cinedex-test.sqlite")
}

func gzipped(t *testing.T, s string) string {
	buf := new(bytes.Buffer)
	w := gzip.NewWriter(buf)
	_, err := io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.String()
}

func countMovies(t *testing.T, dsn string) int {
	db, err := catalog.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	n, err := db.Count(context.Background(), "SELECT COUNT(*) FROM movie")
	require.NoError(t, err)
	return n
}

func TestLoadDump(t *testing.T) {
	dsn := testDsn(t)
	fetch := gzipFetcher{mapFetcher{dumpName: catalogtest.Fixture}}

	stats, err := loadDump("sqlite", dsn, fetch, false)
	require.NoError(t, err)
	assert.Equal(t, catalog.LoadStats{Movies: 12, Directors: 10}, stats)
	assert.Equal(t, catalogtest.FixtureMovies, countMovies(t, dsn))

	// Loading again skips every movie, since their identifiers are taken.
	stats, err = loadDump("sqlite", dsn, fetch, false)
	require.NoError(t, err)
	assert.Equal(t, catalog.LoadStats{Skipped: 12}, stats)

	stats, err = loadDump("sqlite", dsn, fetch, true)
	require.NoError(t, err)
	assert.Equal(t, catalog.LoadStats{Movies: 12, Directors: 10}, stats)
	assert.Equal(t, catalogtest.FixtureMovies, countMovies(t, dsn))
}

func TestLoadDumpGzip(t *testing.T) {
	dsn := testDsn(t)
	fetch := gzipFetcher{mapFetcher{dumpName: gzipped(t, catalogtest.Fixture)}}

	stats, err := loadDump("sqlite", dsn, fetch, false)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Movies)
}

func TestLoadDumpMissing(t *testing.T) {
	_, err := loadDump("sqlite", testDsn(t), gzipFetcher{mapFetcher{}}, false)
	assert.Error(t, err)
}

func TestDownload(t *testing.T) {
	contents := gzipped(t, catalogtest.Fixture)
	fpath := filepath.Join(t.TempDir(), "saved.jsonl.gz")
	require.NoError(t, download(mapFetcher{dumpName: contents}, fpath))

	saved, err := os.ReadFile(fpath)
	require.NoError(t, err)
	assert.Equal(t, contents, string(saved))
}
