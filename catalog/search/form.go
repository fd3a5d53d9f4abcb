package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/BurntSushi/cinedex/catalog"
)

// Params are the parameters of a submitted search form, exactly as they were
// submitted. Empty parameters put no restriction on the search.
type Params struct {
	Query     string `json:"q"`
	Director  string `json:"director"`
	Genre     string `json:"genre"`
	YearStart string `json:"year_start"`
	YearEnd   string `json:"year_end"`
	State     string `json:"movie_state"`
	Type      string `json:"movie_type"`
	Nation    string `json:"nation"`
	Index     string `json:"index"`
	Page      string `json:"page"`
}

// InvalidParamError is returned when a form parameter has a value that
// cannot be used in a search.
type InvalidParamError struct {
	Param, Value string
}

func (e *InvalidParamError) Error() string {
	return sf("invalid value '%s' for parameter '%s'", e.Value, e.Param)
}

// ParamsFromValues reads search parameters from form values. Only the first
// value of each parameter is used.
func ParamsFromValues(v url.Values) Params {
	get := func(k string) string { return strings.TrimSpace(v.Get(k)) }
	return Params{
		Query:     get("q"),
		Director:  get("director"),
		Genre:     get("genre"),
		YearStart: get("year_start"),
		YearEnd:   get("year_end"),
		State:     get("movie_state"),
		Type:      get("movie_type"),
		Nation:    get("nation"),
		Index:     get("index"),
		Page:      get("page"),
	}
}

// FromValues returns a searcher for the search form values given.
func FromValues(db *catalog.DB, v url.Values) (*Searcher, error) {
	return ParamsFromValues(v).Searcher(db)
}

// Searcher returns a searcher restricted by these parameters. An error of
// type *InvalidParamError is returned if a year isn't an integer.
func (p Params) Searcher(db *catalog.DB) (*Searcher, error) {
	s := New(db).
		Text(p.Query).
		Director(p.Director).
		Genres(SplitList(p.Genre)...).
		States(SplitList(p.State)...).
		Types(SplitList(p.Type)...).
		Nations(SplitList(p.Nation)...).
		Index(p.Index)
	if len(p.Page) > 0 {
		s.PageNumber(p.Page)
	}

	if len(p.YearStart) > 0 {
		n, err := year("year_start", p.YearStart)
		if err != nil {
			return nil, err
		}
		s.YearsFrom(n)
	}
	if len(p.YearEnd) > 0 {
		n, err := year("year_end", p.YearEnd)
		if err != nil {
			return nil, err
		}
		s.YearsUntil(n)
	}
	return s, nil
}

func year(param, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &InvalidParamError{Param: param, Value: v}
	}
	return n, nil
}

// Values returns the non-empty parameters as form values. The page number
// is left out, so that links to other pages can set it.
func (p Params) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if len(val) > 0 {
			v.Set(k, val)
		}
	}
	set("q", p.Query)
	set("director", p.Director)
	set("genre", p.Genre)
	set("year_start", p.YearStart)
	set("year_end", p.YearEnd)
	set("movie_state", p.State)
	set("movie_type", p.Type)
	set("nation", p.Nation)
	set("index", p.Index)
	return v
}

// WithPage returns the encoded query string for these parameters showing
// page n.
func (p Params) WithPage(n int) string {
	v := p.Values()
	v.Set("page", strconv.Itoa(n))
	return v.Encode()
}

// SplitList splits a comma separated list. Items are trimmed and empty items
// are dropped.
func SplitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); len(item) > 0 {
			items = append(items, item)
		}
	}
	return items
}
