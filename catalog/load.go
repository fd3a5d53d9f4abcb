package catalog

import (
	"context"
	"database/sql"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// DefaultBatchSize is the number of movies inserted per round trip when
// loading.
const DefaultBatchSize = 50

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is a movie as it appears in a catalog dump, where each line is one
// JSON object. Directors are given by name and are shared between movies.
//
// If ID is 0, then the movie is given the next free identifier.
type Record struct {
	ID        int64    `json:"mid"`
	Name      string   `json:"movie_name"`
	EngName   string   `json:"movie_engname"`
	Year      int      `json:"create_year"`
	Type      string   `json:"movie_type"`
	State     string   `json:"movie_state"`
	Genres    []string `json:"genres"`
	Companies []string `json:"companies"`
	Directors []string `json:"directors"`
	Nations   []string `json:"nations"`
}

// LoadStats summarizes a call to Load.
type LoadStats struct {
	Movies    int // Movies added.
	Skipped   int // Records skipped (no title or duplicate identifier).
	Directors int // Directors added. Existing directors are reused.
}

// Load reads movie records from r and adds them to the catalog in a single
// transaction. Records that cannot be added are skipped, and warn (if not
// nil) is called with the reason. Malformed input aborts the whole load.
//
// Loading is append only: movies whose identifier already exists are
// skipped rather than updated.
func (db *DB) Load(
	ctx context.Context,
	r io.Reader,
	warn func(format string, v ...interface{}),
) (stats LoadStats, err error) {
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	tx, err := db.Begin(ctx)
	if err != nil {
		return stats, err
	}
	defer tx.Rollback()

	ld, err := newLoader(ctx, db, tx)
	if err != nil {
		return stats, err
	}
	dec := json.NewDecoder(r)
	// More skips the whitespace between records, including the newline
	// ending the last one.
	for n := 1; dec.More(); n++ {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return stats, errors.Wrapf(err, "could not read movie record %d", n)
		}
		if why := ld.add(&rec); len(why) > 0 {
			warn("Skipping record %d (%s): %s", n, rec.Name, why)
			stats.Skipped++
			continue
		}
		stats.Movies++
		if stats.Movies%DefaultBatchSize == 0 {
			if err := ld.flush(); err != nil {
				return stats, err
			}
		}
	}
	if err := ld.flush(); err != nil {
		return stats, err
	}
	stats.Directors = ld.newDirectors
	return stats, tx.Commit()
}

// loader keeps track of the identifiers already used, so that directors can
// be shared by name and movie identifiers can be assigned.
type loader struct {
	mids         map[int64]bool
	nextMid      int64
	directors    map[string]int64
	nextDid      int64
	newDirectors int

	// In the order they must be flushed to satisfy foreign keys.
	movies, dirs, genres, companies, nations, castings *Inserter
}

func newLoader(ctx context.Context, db *DB, tx *Tx) (*loader, error) {
	ld := &loader{
		mids:      make(map[int64]bool),
		directors: make(map[string]int64),
	}
	rows, err := tx.QueryContext(ctx, "SELECT mid FROM movie")
	if err != nil {
		return nil, errors.Wrap(err, "could not read movie identifiers")
	}
	for rows.Next() {
		var mid int64
		if err := rows.Scan(&mid); err != nil {
			rows.Close()
			return nil, err
		}
		ld.mids[mid] = true
		if mid > ld.nextMid {
			ld.nextMid = mid
		}
	}
	rows.Close()

	rows, err = tx.QueryContext(ctx, "SELECT did, dname FROM director")
	if err != nil {
		return nil, errors.Wrap(err, "could not read directors")
	}
	for rows.Next() {
		var did int64
		var name string
		if err := rows.Scan(&did, &name); err != nil {
			rows.Close()
			return nil, err
		}
		ld.directors[name] = did
		if did > ld.nextDid {
			ld.nextDid = did
		}
	}
	rows.Close()
	ld.nextMid++
	ld.nextDid++

	// Flushing is driven by the loader, so the inserters never flush on
	// their own.
	const never = 1 << 30
	inserters := []struct {
		ins     **Inserter
		table   string
		columns []string
	}{
		{&ld.movies, "movie", []string{"mid", "movie_name", "movie_engname",
			"create_year", "movie_type", "movie_state"}},
		{&ld.dirs, "director", []string{"did", "dname"}},
		{&ld.genres, "movie_genre", []string{"genre", "mid"}},
		{&ld.companies, "movie_company", []string{"company", "mid"}},
		{&ld.nations, "movie_nation", []string{"nation", "mid"}},
		{&ld.castings, "casting", []string{"mid", "did"}},
	}
	for _, in := range inserters {
		*in.ins, err = db.NewInserter(ctx, tx, never, in.table, in.columns...)
		if err != nil {
			return nil, err
		}
	}
	return ld, nil
}

// add queues the rows for one record. It returns a non-empty reason when the
// record is skipped.
func (ld *loader) add(rec *Record) string {
	rec.Name = strings.TrimSpace(rec.Name)
	if len(rec.Name) == 0 {
		return "no movie name"
	}
	if rec.ID == 0 {
		for ld.mids[ld.nextMid] {
			ld.nextMid++
		}
		rec.ID = ld.nextMid
	}
	if ld.mids[rec.ID] {
		return sf("movie %d already exists", rec.ID)
	}
	ld.mids[rec.ID] = true

	// Errors from Exec can only be argument count mismatches here, since
	// nothing is sent to the database until flush.
	ld.movies.Exec(rec.ID, rec.Name, nullable(rec.EngName), rec.Year,
		nullable(rec.Type), nullable(rec.State))
	for _, g := range uniq(rec.Genres) {
		ld.genres.Exec(g, rec.ID)
	}
	for _, c := range uniq(rec.Companies) {
		ld.companies.Exec(c, rec.ID)
	}
	for _, n := range uniq(rec.Nations) {
		ld.nations.Exec(n, rec.ID)
	}
	for _, name := range uniq(rec.Directors) {
		did, ok := ld.directors[name]
		if !ok {
			did = ld.nextDid
			ld.nextDid++
			ld.directors[name] = did
			ld.dirs.Exec(did, name)
			ld.newDirectors++
		}
		ld.castings.Exec(rec.ID, did)
	}
	return ""
}

func (ld *loader) flush() error {
	for _, ins := range []*Inserter{
		ld.movies, ld.dirs, ld.genres, ld.companies, ld.nations, ld.castings,
	} {
		if err := ins.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func nullable(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: len(s) > 0}
}

// uniq trims each value and drops empty and repeated values, preserving
// order.
func uniq(vals []string) []string {
	seen := make(map[string]bool, len(vals))
	var out []string
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if len(v) == 0 || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
