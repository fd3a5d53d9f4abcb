package tpl

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"github.com/kr/text"
	"golang.org/x/text/width"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/catalog/search"
	"github.com/BurntSushi/cinedex/hangul"
)

var (
	sf = fmt.Sprintf
	ef = fmt.Errorf
)

// Helpers are the functions available to every template.
var Helpers = template.FuncMap{
	"combine":    combine,
	"lines":      lines,
	"wrap":       wrap,
	"underlined": underlined,
	"join":       join,
	"split":      search.SplitList,
	"contains":   contains,
	"add":        func(a, b int) int { return a + b },
	"query":      query,
}

// htmlHelpers returns Helpers along with the functions that only make sense
// in HTML templates.
func htmlHelpers() htmltemplate.FuncMap {
	fm := htmltemplate.FuncMap{
		"page_url":  pageURL,
		"index_url": indexURL,
	}
	for name, f := range Helpers {
		fm[name] = f
	}
	return fm
}

// Combine provides a way to compose values during template execution.
// This is particularly useful when executing sub-templates. For example,
// say you've defined two variables `$a` and `$b` that you want to pass to
// a sub-template. But templates can only take a single pipeline. Combine will
// let you bind any number of values. For example:
//
//	{{ template "tpl_name" (combine "a" $a "b" $b) }}
//
// The template "tpl_name" can then access `$a` and `$b` with `.a` and `.b`.
//
// Note that the first and every other subsequent value must be strings. The
// second and every other subsequent value may be anything. There must be an
// even number of arguments given. If any part of this contract is violated,
// the function panics.
func combine(keyvals ...interface{}) map[string]interface{} {
	if len(keyvals)%2 != 0 {
		panic(sf("Combine must have even number of parameters but %d isn't.",
			len(keyvals)))
	}
	m := make(map[string]interface{})
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			panic(sf("Parameter %d to Combine must be a string but it is "+
				"a %T.", i, keyvals[i]))
		}
		m[key] = keyvals[i+1]
	}
	return m
}

func wrap(limit int, s interface{}) string {
	return text.Wrap(sf("%s", s), limit)
}

func lines(s interface{}) []string {
	return strings.Split(sf("%s", s), "\n")
}

// underlined puts a line of rep under s that is as wide as s is on a
// terminal. Hangul syllables take up two columns.
func underlined(rep string, is interface{}) string {
	s := sf("%s", is)
	return sf("%s\n%s", s, strings.Repeat(rep, columns(s)))
}

func columns(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func join(sep string, xs []string) string {
	return strings.Join(xs, sep)
}

func contains(xs []string, x string) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}

// query returns the encoded query string of a search showing page n.
func query(p search.Params, n int) string {
	return p.WithPage(n)
}

func pageURL(p search.Params, n int) htmltemplate.URL {
	return htmltemplate.URL("?" + p.WithPage(n))
}

// indexURL links to the first page of the same search restricted to the
// index letter given.
func indexURL(p search.Params, letter string) htmltemplate.URL {
	p.Index = letter
	return htmltemplate.URL("?" + p.Values().Encode())
}

// Formatted is the value given to every text template. X is the value being
// shown and A holds extra options.
type Formatted struct {
	X interface{}
	A Attrs
}

type Attrs map[string]interface{}

// The years offered by the search form.
const (
	FirstYear = 1900
	LastYear  = 2029
)

// SearchPage is everything shown on the web search page.
type SearchPage struct {
	Params  search.Params
	Page    *search.Page
	Facets  *catalog.Facets
	Letters []string
	Years   []int
}

// NewSearchPage fills in the index letters and years of a search page.
// facets may be nil.
func NewSearchPage(
	params search.Params,
	page *search.Page,
	facets *catalog.Facets,
) *SearchPage {
	if facets == nil {
		facets = new(catalog.Facets)
	}
	sp := &SearchPage{
		Params:  params,
		Page:    page,
		Facets:  facets,
		Letters: hangul.Letters,
	}
	for y := FirstYear; y <= LastYear; y++ {
		sp.Years = append(sp.Years, y)
	}
	return sp
}
