package main

import (
	"bufio"
	"io"
	"net/http"
	"net/url"
	"os"
	path "path/filepath"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/klauspost/compress/gzip"
)

// dumpName is the file read from a directory or a URL that doesn't name a
// file itself.
const dumpName = "movies.jsonl.gz"

// fetcher provides an interface for retrieving catalog dumps. This abstracts
// over where the dumps come from: local files, HTTP, FTP, etc.
type fetcher interface {
	dump(name string) (io.ReadCloser, error)
}

// newFetcher returns a fetcher based on the uri given. The uri may be an FTP
// or HTTP URL, a local file or a local directory. URLs and directories are
// expected to contain a dump with the name given to the fetcher, unless the
// URL names a dump file itself.
func newFetcher(uri string) (fetcher, error) {
	if !strings.HasPrefix(uri, "http") && !strings.HasPrefix(uri, "ftp") {
		fi, err := os.Stat(uri)
		if err != nil {
			return nil, err
		}
		if fi.IsDir() {
			return dirFetcher(uri), nil
		}
		return fileFetcher(uri), nil
	}

	loc, err := url.Parse(uri)
	if err != nil {
		return nil, ef("Could not parse URL '%s': %s", uri, err)
	}
	switch loc.Scheme {
	case "http", "https":
		return httpFetcher{loc}, nil
	case "ftp":
		return ftpFetcher{loc}, nil
	}
	return nil, ef("Unsupported URL scheme '%s' in '%s'.", loc.Scheme, uri)
}

// isDumpFile returns true if p looks like it names a dump rather than a
// directory of dumps.
func isDumpFile(p string) bool {
	for _, ext := range []string{".jsonl", ".json", ".gz"} {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}

// locate returns the path of the dump called name relative to base.
func locate(base, name string) string {
	if isDumpFile(base) {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + name
}

// dirFetcher satisfies the fetcher interface by reading from a local
// directory.
type dirFetcher string

func (df dirFetcher) dump(name string) (io.ReadCloser, error) {
	return os.Open(path.Join(string(df), name))
}

// fileFetcher satisfies the fetcher interface by always reading the same
// local file.
type fileFetcher string

func (ff fileFetcher) dump(name string) (io.ReadCloser, error) {
	return os.Open(string(ff))
}

// httpFetcher satisfies the fetcher interface by reading from an HTTP URL.
type httpFetcher struct {
	*url.URL
}

func (hf httpFetcher) dump(name string) (io.ReadCloser, error) {
	loc := *hf.URL
	loc.Path = locate(loc.Path, name)
	uri := loc.String()

	resp, err := http.Get(uri)
	if err != nil {
		return nil, ef("Could not download '%s': %s", uri, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, ef("Could not download '%s': %s", uri, resp.Status)
	}
	return resp.Body, nil
}

// ftpFetcher satisfies the fetcher interface by reading from an FTP URL.
// Each dump is read over a new FTP connection.
type ftpFetcher struct {
	*url.URL
}

func (ff ftpFetcher) dump(name string) (io.ReadCloser, error) {
	host := ff.Host
	if !strings.Contains(host, ":") {
		host += ":21"
	}
	user, pass := "anonymous", "anonymous"
	if ff.User != nil {
		user = ff.User.Username()
		if p, ok := ff.User.Password(); ok {
			pass = p
		}
	}

	conn, err := ftp.Dial(host, ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		return nil, ef("Could not connect to '%s': %s", host, err)
	}
	if err := conn.Login(user, pass); err != nil {
		conn.Quit()
		return nil, ef("Authentication failed for '%s': %s", host, err)
	}
	namePath := locate(ff.Path, name)
	r, err := conn.Retr(namePath)
	if err != nil {
		conn.Quit()
		return nil, ef("Could not retrieve '%s' from '%s': %s",
			namePath, host, err)
	}
	return &ftpReadCloser{conn, r}, nil
}

// ftpReadCloser closes the FTP connection along with the download.
type ftpReadCloser struct {
	conn *ftp.ServerConn
	*ftp.Response
}

func (r *ftpReadCloser) Close() error {
	err := r.Response.Close()
	if qerr := r.conn.Quit(); err == nil {
		err = qerr
	}
	return err
}

// gzipFetcher wraps a value satisfying the fetcher interface with a gzip
// reader when the dump is compressed. Uncompressed dumps are read as they
// are. It also couples the closing of a gzip reader with closing the
// underlying reader.
type gzipFetcher struct {
	fetcher
}

func (gf gzipFetcher) dump(name string) (io.ReadCloser, error) {
	plain, err := gf.fetcher.dump(name)
	if err != nil {
		return nil, err
	}

	buf := bufio.NewReader(plain)
	magic, err := buf.Peek(2)
	if err != nil || magic[0] != 0x1f || magic[1] != 0x8b {
		return &bufCloser{buf, plain}, nil
	}
	gz, err := gzip.NewReader(buf)
	if err != nil {
		plain.Close()
		return nil, ef("Could not create gzip reader for '%s': %s", name, err)
	}
	return &gzipCloser{gz, plain}, nil
}

type bufCloser struct {
	*bufio.Reader
	underlying io.Closer
}

func (bc *bufCloser) Close() error {
	return bc.underlying.Close()
}

type gzipCloser struct {
	*gzip.Reader
	underlying io.ReadCloser
}

func (gc *gzipCloser) Close() error {
	defer func() {
		gc.Reader = nil
		gc.underlying = nil
	}()

	// It's important not to try closing more than once, particularly for
	// readers the originate from an FTP connection.
	if gc.Reader == nil || gc.underlying == nil {
		return nil
	}

	var err error
	if err = gc.Reader.Close(); err != nil {
		pef("Error closing gzip reader: %s", err)
	}
	if err = gc.underlying.Close(); err != nil {
		pef("Error closing initial source: %s", err)
	}
	return err
}
