package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecord = `{"mid": 1, "movie_name": "기생충", "create_year": 2019}` + "\n"

func readDump(t *testing.T, f fetcher) string {
	t.Helper()
	r, err := gzipFetcher{f}.dump(dumpName)
	require.NoError(t, err)
	defer r.Close()

	bs, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(bs)
}

func TestNewFetcher(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "dump.jsonl")
	require.NoError(t, os.WriteFile(fpath, []byte(testRecord), 0644))

	f, err := newFetcher(dir)
	require.NoError(t, err)
	assert.IsType(t, dirFetcher(""), f)

	f, err = newFetcher(fpath)
	require.NoError(t, err)
	assert.IsType(t, fileFetcher(""), f)

	f, err = newFetcher("https://example.com/dumps")
	require.NoError(t, err)
	assert.IsType(t, httpFetcher{}, f)

	f, err = newFetcher("ftp://example.com/pub")
	require.NoError(t, err)
	assert.IsType(t, ftpFetcher{}, f)

	_, err = newFetcher("httpx://example.com")
	assert.Error(t, err)
	_, err = newFetcher(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	assert.Equal(t, "/pub/movies.jsonl.gz", locate("/pub", dumpName))
	assert.Equal(t, "/pub/movies.jsonl.gz", locate("/pub/", dumpName))
	assert.Equal(t, "/pub/2024.jsonl", locate("/pub/2024.jsonl", dumpName))
	assert.Equal(t, "/pub/2024.json.gz", locate("/pub/2024.json.gz", dumpName))
}

func TestLocalFetchers(t *testing.T) {
	dir := t.TempDir()
	gzPath := filepath.Join(dir, dumpName)
	require.NoError(t, os.WriteFile(gzPath, []byte(gzipped(t, testRecord)), 0644))
	plainPath := filepath.Join(dir, "plain.jsonl")
	require.NoError(t, os.WriteFile(plainPath, []byte(testRecord), 0644))

	assert.Equal(t, testRecord, readDump(t, dirFetcher(dir)))
	assert.Equal(t, testRecord, readDump(t, fileFetcher(gzPath)))
	assert.Equal(t, testRecord, readDump(t, fileFetcher(plainPath)))
}

func TestEmptyDump(t *testing.T) {
	assert.Equal(t, "", readDump(t, mapFetcher{dumpName: ""}))
}

func TestHTTPFetcher(t *testing.T) {
	compressed := gzipped(t, testRecord)
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/dumps/movies.jsonl.gz" {
				http.NotFound(w, r)
				return
			}
			io.WriteString(w, compressed)
		}))
	defer srv.Close()

	f, err := newFetcher(srv.URL + "/dumps")
	require.NoError(t, err)
	assert.Equal(t, testRecord, readDump(t, f))

	f, err = newFetcher(srv.URL + "/dumps/movies.jsonl.gz")
	require.NoError(t, err)
	assert.Equal(t, testRecord, readDump(t, f))

	f, err = newFetcher(srv.URL + "/elsewhere")
	require.NoError(t, err)
	_, err = f.dump(dumpName)
	assert.Error(t, err)
}
