package catalog

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a movie with the requested identifier does
// not exist.
var ErrNotFound = errors.New("movie not found")

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// Movie represents a single movie in the catalog.
type Movie struct {
	ID      int64  `json:"mid"`
	Name    string `json:"movie_name"`
	EngName string `json:"movie_engname"`
	Year    int    `json:"create_year"`
	Type    string `json:"movie_type"`
	State   string `json:"movie_state"` // Production state, never "None".
}

// MovieColumns are the columns, qualified by the alias 'm', read by
// Movie.Scan.
const MovieColumns = `m.mid, m.movie_name, m.movie_engname, m.create_year,
	m.movie_type, m.movie_state`

func (m *Movie) String() string {
	s := m.Name
	if len(s) == 0 {
		s = "N/A"
	}
	if m.Year > 0 {
		s += sf(" (%d)", m.Year)
	}
	return s
}

// Scan loads a movie from a row with the columns in MovieColumns.
func (m *Movie) Scan(rs RowScanner) error {
	var eng, typ, state sql.NullString
	err := rs.Scan(&m.ID, &m.Name, &eng, &m.Year, &typ, &state)
	if err != nil {
		return err
	}
	m.EngName, m.Type = eng.String, typ.String
	m.State = NormalizeState(state)
	return nil
}

// NormalizeState maps the production states that mean "unknown" (NULL, the
// empty string and the literal text "None") to the empty string.
func NormalizeState(s sql.NullString) string {
	if !s.Valid || isNoneState(s.String) {
		return ""
	}
	return s.String
}

func isNoneState(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) == 0 || s == "None"
}

// Details is a movie along with all of its related values.
type Details struct {
	Movie
	Genres    []string `json:"genres"`
	Companies []string `json:"companies"`
	Directors []string `json:"directors"`
	Nations   []string `json:"nations"`
}

// MovieByID returns the movie with the given identifier, or ErrNotFound.
func (db *DB) MovieByID(ctx context.Context, id int64) (*Movie, error) {
	m := new(Movie)
	q := db.Rebind("SELECT " + MovieColumns + " FROM movie AS m WHERE m.mid = ?")
	err := m.Scan(db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "could not load movie %d", id)
	}
	return m, nil
}

// Genres returns the genres of a movie, in the order they were added.
func (db *DB) Genres(ctx context.Context, mid int64) ([]string, error) {
	return db.related(ctx, "genre",
		"SELECT genre FROM movie_genre WHERE mid = ? ORDER BY mgid", mid)
}

// Companies returns the production companies of a movie.
func (db *DB) Companies(ctx context.Context, mid int64) ([]string, error) {
	return db.related(ctx, "company",
		"SELECT company FROM movie_company WHERE mid = ? ORDER BY mcid", mid)
}

// Nations returns the nations of a movie.
func (db *DB) Nations(ctx context.Context, mid int64) ([]string, error) {
	return db.related(ctx, "nation",
		"SELECT nation FROM movie_nation WHERE mid = ? ORDER BY mnid", mid)
}

// Directors returns the names of the directors credited with a movie.
func (db *DB) Directors(ctx context.Context, mid int64) ([]string, error) {
	return db.related(ctx, "director", `
		SELECT d.dname
		FROM casting AS c
		JOIN director AS d ON d.did = c.did
		WHERE c.mid = ?
		ORDER BY c.cid
		`, mid)
}

func (db *DB) related(
	ctx context.Context,
	what, q string,
	mid int64,
) ([]string, error) {
	vals, err := db.texts(ctx, q, mid)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s values of movie %d",
			what, mid)
	}
	return vals, nil
}

// DetailsByID returns a movie and all of its related values, or ErrNotFound.
func (db *DB) DetailsByID(ctx context.Context, id int64) (*Details, error) {
	m, err := db.MovieByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &Details{Movie: *m}
	if d.Genres, err = db.Genres(ctx, id); err != nil {
		return nil, err
	}
	if d.Companies, err = db.Companies(ctx, id); err != nil {
		return nil, err
	}
	if d.Directors, err = db.Directors(ctx, id); err != nil {
		return nil, err
	}
	if d.Nations, err = db.Nations(ctx, id); err != nil {
		return nil, err
	}
	return d, nil
}
