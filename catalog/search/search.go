package search

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/hangul"
)

const (
	// DefaultPageSize is the number of movies on each page of results.
	DefaultPageSize = 10

	maxPageSize = 1000
)

var (
	sf  = fmt.Sprintf
	ef  = fmt.Errorf
	pef = func(f string, v ...interface{}) {
		fmt.Fprintf(os.Stderr, f+"\n", v...)
	}
)

// Searcher represents the parameters of a search.
type Searcher struct {
	db       *catalog.DB
	mode     hangul.Mode
	text     string
	director string
	index    string
	year     *irange
	order    []searchOrder
	page     string
	pageSize int
	debug    bool
	logf     func(format string, v ...interface{})

	genres, states, types, nations []string
}

type searchOrder struct {
	column, order string
}

// irange is an inclusive range. A nil bound leaves that side open.
type irange struct {
	min, max *int
}

// New returns a searcher over the whole catalog. Without any filters, it
// returns every movie, one page at a time.
func New(db *catalog.DB) *Searcher {
	return &Searcher{
		db:       db,
		mode:     hangul.Merged,
		page:     "1",
		pageSize: DefaultPageSize,
		logf:     pef,
	}
}

// Text restricts results to movies whose Korean or English title contains
// the text given, ignoring case.
func (s *Searcher) Text(text string) *Searcher {
	s.text = strings.TrimSpace(text)
	return s
}

// Director restricts results to movies credited to a director whose name
// contains the text given, ignoring case.
func (s *Searcher) Director(name string) *Searcher {
	s.director = strings.TrimSpace(name)
	return s
}

// Genres restricts results to movies with at least one of the genres given.
// It may be called more than once to allow more genres.
func (s *Searcher) Genres(genres ...string) *Searcher {
	s.genres = append(s.genres, genres...)
	return s
}

// States restricts results to movies in one of the production states given.
func (s *Searcher) States(states ...string) *Searcher {
	s.states = append(s.states, states...)
	return s
}

// Types restricts results to movies of one of the types given.
func (s *Searcher) Types(types ...string) *Searcher {
	s.types = append(s.types, types...)
	return s
}

// Nations restricts results to movies from at least one of the nations
// given.
func (s *Searcher) Nations(nations ...string) *Searcher {
	s.nations = append(s.nations, nations...)
	return s
}

// Years specifies that the results must be in the range of years given.
// The range is inclusive.
func (s *Searcher) Years(min, max int) *Searcher {
	return s.YearsFrom(min).YearsUntil(max)
}

// YearsFrom specifies that the results must be from the year given or
// later.
func (s *Searcher) YearsFrom(min int) *Searcher {
	if s.year == nil {
		s.year = &irange{}
	}
	s.year.min = &min
	return s
}

// YearsUntil specifies that the results must be from the year given or
// earlier.
func (s *Searcher) YearsUntil(max int) *Searcher {
	if s.year == nil {
		s.year = &irange{}
	}
	s.year.max = &max
	return s
}

// Index restricts results to titles listed under the index letter given.
// See the package documentation for what counts as an index letter.
func (s *Searcher) Index(letter string) *Searcher {
	s.index = strings.TrimSpace(letter)
	return s
}

// IndexMode sets how Hangul index letters treat tense consonants. The
// default is hangul.Merged.
func (s *Searcher) IndexMode(m hangul.Mode) *Searcher {
	s.mode = m
	return s
}

// Sort specifies the order in which to return the results.
// Note that Sort can be called multiple times. Each call adds the column and
// order to the current sort criteria. Results are always finally ordered by
// movie identifier, so that pages are stable.
//
// The order is "asc" or "desc". Anything else is ascending.
func (s *Searcher) Sort(column, order string) *Searcher {
	if strings.EqualFold(order, "desc") {
		order = "DESC"
	} else {
		order = "ASC"
	}
	s.order = append(s.order, searchOrder{column, order})
	return s
}

// Page selects the page of results to return, starting at 1.
func (s *Searcher) Page(n int) *Searcher {
	s.page = sf("%d", n)
	return s
}

// PageNumber is like Page, but takes the page number as it was submitted.
// A page number that isn't an integer selects the first page.
func (s *Searcher) PageNumber(raw string) *Searcher {
	s.page = raw
	return s
}

// PageSize sets the number of movies on each page. Non-positive sizes are
// ignored, and sizes are capped at 1000.
func (s *Searcher) PageSize(n int) *Searcher {
	if n > maxPageSize {
		n = maxPageSize
	}
	if n > 0 {
		s.pageSize = n
	}
	return s
}

// Debug makes the searcher log the SQL queries it runs with the function
// given. If logf is nil, queries are written to stderr.
func (s *Searcher) Debug(logf func(format string, v ...interface{})) *Searcher {
	s.debug = true
	if logf != nil {
		s.logf = logf
	}
	return s
}

// Results executes the parameters of the search and returns the page of
// results selected.
func (s *Searcher) Results(ctx context.Context) (*Page, error) {
	start := time.Now()
	where, args := s.where()

	q := sf("SELECT COUNT(*) FROM movie AS m %s", where)
	s.logQuery(q, args)
	total, err := s.db.Count(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "could not count search results")
	}

	p := newPage(total, s.pageSize, s.page)
	q = sf(`
		SELECT %s
		FROM movie AS m
		%s
		%s
		LIMIT ? OFFSET ?
		`, catalog.MovieColumns, where, s.orderby())
	args = append(args, p.PageSize, (p.Number-1)*p.PageSize)
	s.logQuery(q, args)

	rows, err := s.db.QueryContext(ctx, s.db.Rebind(q), args...)
	if err != nil {
		return nil, errors.Wrap(err, "could not run search")
	}
	defer rows.Close()
	for rows.Next() {
		var m catalog.Movie
		if err := m.Scan(rows); err != nil {
			return nil, errors.Wrap(err, "could not read search result")
		}
		p.Movies = append(p.Movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read search results")
	}
	p.QueryTime = time.Since(start)
	return p, nil
}

func (s *Searcher) logQuery(q string, args []interface{}) {
	if s.debug {
		s.logf("%s\n-- args: %v", strings.TrimSpace(q), args)
	}
}

// where returns the WHERE clause (possibly empty) of the search along with
// the values for its placeholders.
func (s *Searcher) where() (string, []interface{}) {
	var conj []string
	var args []interface{}
	add := func(cond string, vals ...interface{}) {
		conj = append(conj, cond)
		args = append(args, vals...)
	}

	if len(s.text) > 0 {
		pat := contains(s.text)
		add(`(LOWER(m.movie_name) LIKE ? ESCAPE '!'
			OR LOWER(m.movie_engname) LIKE ? ESCAPE '!')`, pat, pat)
	}
	if len(s.director) > 0 {
		add(`EXISTS (
			SELECT 1 FROM casting AS c
			JOIN director AS d ON d.did = c.did
			WHERE c.mid = m.mid AND LOWER(d.dname) LIKE ? ESCAPE '!'
		)`, contains(s.director))
	}
	if vals := clean(s.genres); len(vals) > 0 {
		add(sf(`EXISTS (
			SELECT 1 FROM movie_genre AS g
			WHERE g.mid = m.mid AND g.genre IN (%s)
		)`, placeholders(len(vals))), vals...)
	}
	if vals := clean(s.nations); len(vals) > 0 {
		add(sf(`EXISTS (
			SELECT 1 FROM movie_nation AS n
			WHERE n.mid = m.mid AND n.nation IN (%s)
		)`, placeholders(len(vals))), vals...)
	}
	if vals := clean(s.states); len(vals) > 0 {
		add(sf("m.movie_state IN (%s)", placeholders(len(vals))), vals...)
	}
	if vals := clean(s.types); len(vals) > 0 {
		add(sf("m.movie_type IN (%s)", placeholders(len(vals))), vals...)
	}
	if s.year != nil {
		if cond, vals := s.year.cond("m.create_year"); len(cond) > 0 {
			add(cond, vals...)
		}
	}
	if cond, vals := s.indexCond(); len(cond) > 0 {
		add(cond, vals...)
	}

	if len(conj) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conj, "\n\t\t\tAND "), args
}

// indexCond returns the condition for the index letter, or nothing at all
// if the letter isn't an index letter.
func (s *Searcher) indexCond() (string, []interface{}) {
	switch {
	case hangul.IsIndex(s.index):
		start, end := s.mode.Range(s.index)
		if len(start) == 0 || len(end) == 0 {
			return "", nil
		}
		name := s.db.Binary("m.movie_name")
		return sf("%s >= ? AND %s < ?", name, name), []interface{}{start, end}
	case hangul.IsLatinIndex(s.index):
		return "LOWER(m.movie_name) LIKE ? ESCAPE '!'",
			[]interface{}{escapeLike(strings.ToLower(s.index)) + "%"}
	}
	return "", nil
}

func (s *Searcher) orderby() string {
	var cols []string
	for _, ord := range s.order {
		qualed := s.qualified(ord.column)
		if len(qualed) == 0 {
			continue
		}
		cols = append(cols, sf("%s %s", qualed, ord.order))
	}
	cols = append(cols, "m.mid ASC")
	return "ORDER BY " + strings.Join(cols, ", ")
}

// SortColumns lists the columns that results may be sorted by.
var SortColumns = []string{"mid", "name", "engname", "year"}

func (s *Searcher) qualified(column string) string {
	switch column {
	case "mid":
		return "m.mid"
	case "name":
		return s.db.Binary("m.movie_name")
	case "engname":
		return "m.movie_engname"
	case "year":
		return "m.create_year"
	}
	return ""
}

func isSortColumn(column string) bool {
	for _, c := range SortColumns {
		if c == column {
			return true
		}
	}
	return false
}

func (ir *irange) cond(col string) (string, []interface{}) {
	switch {
	case ir.min != nil && ir.max != nil:
		return sf("%s >= ? AND %s <= ?", col, col), []interface{}{*ir.min, *ir.max}
	case ir.min != nil:
		return sf("%s >= ?", col), []interface{}{*ir.min}
	case ir.max != nil:
		return sf("%s <= ?", col), []interface{}{*ir.max}
	}
	return "", nil
}

// contains returns a LIKE pattern matching any text containing s, ignoring
// case.
func contains(s string) string {
	return "%" + escapeLike(strings.ToLower(s)) + "%"
}

// escapeLike escapes the LIKE wildcards in s, using '!' as the escape
// character.
func escapeLike(s string) string {
	s = strings.Replace(s, "!", "!!", -1)
	s = strings.Replace(s, "%", "!%", -1)
	return strings.Replace(s, "_", "!_", -1)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// clean trims values and drops empty ones, returning them ready to be used
// as query arguments.
func clean(vals []string) []interface{} {
	var out []interface{}
	for _, v := range vals {
		if v = strings.TrimSpace(v); len(v) > 0 {
			out = append(out, v)
		}
	}
	return out
}
