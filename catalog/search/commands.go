package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/hangul"
)

func init() {
	// Add synonyms of commands to the map of commands.
	for _, cmd := range commands {
		for _, synonym := range cmd.synonyms {
			// Don't add to the map while iterating.
			defer func(s string, c *command) { commands[s] = c }(synonym, cmd)
		}
	}
}

// A command is a directive included in a string representation of a search.
// They are of the form '{name:value}', where 'value' is interpreted specially
// depending upon the command.
//
// A command may also have synonyms. For example '{director:봉준호}' can also
// be expressed more tersely as '{d:봉준호}'.
type command struct {
	desc     string
	synonyms []string
	hasArg   bool
	add      func(s *Searcher, value string) error
}

var commands = map[string]*command{
	"debug": {
		"When enabled, the SQL queries used in the search will be logged " +
			"to stderr.",
		nil, false,
		func(s *Searcher, v string) error {
			s.Debug(nil)
			return nil
		},
	},
	"director": {
		"Only show movies credited to a director whose name contains the " +
			"text given. e.g., {d:봉준} matches movies by 봉준호.",
		[]string{"d"}, true,
		func(s *Searcher, v string) error {
			s.Director(v)
			return nil
		},
	},
	"genre": {
		"Only show movies with at least one of the comma separated genres. " +
			"e.g., {genre:드라마,SF}.",
		[]string{"genres"}, true,
		func(s *Searcher, v string) error {
			s.Genres(SplitList(v)...)
			return nil
		},
	},
	"state": {
		"Only show movies in one of the comma separated production states.",
		[]string{"states"}, true,
		func(s *Searcher, v string) error {
			s.States(SplitList(v)...)
			return nil
		},
	},
	"type": {
		"Only show movies of one of the comma separated movie types.",
		[]string{"types"}, true,
		func(s *Searcher, v string) error {
			s.Types(SplitList(v)...)
			return nil
		},
	},
	"nation": {
		"Only show movies from at least one of the comma separated nations.",
		[]string{"nations"}, true,
		func(s *Searcher, v string) error {
			s.Nations(SplitList(v)...)
			return nil
		},
	},
	"years": {
		"Only show search results for the year or years specified. " +
			"e.g., {1990-1999} only shows movies in the 90s.",
		[]string{"year"}, true,
		func(s *Searcher, v string) error {
			mn, mx, err := intRange(v)
			if err != nil {
				return err
			}
			if mn != nil {
				s.YearsFrom(*mn)
			}
			if mx != nil {
				s.YearsUntil(*mx)
			}
			return nil
		},
	},
	"index": {
		"Only show movies listed under the index letter given: a Hangul " +
			"consonant (e.g., {index:ㄱ}) or an uppercase Latin letter (e.g., {index:A}).",
		[]string{"i"}, true,
		func(s *Searcher, v string) error {
			if !hangul.IsIndex(v) && !hangul.IsLatinIndex(v) {
				return ef("'%s' is not an index letter.", v)
			}
			s.Index(v)
			return nil
		},
	},
	"sort": {
		"Sorts the search results according to the field given. It may be " +
			"specified multiple times for more specific sorting. " +
			"e.g., {sort:year desc} sorts by year in descending (newest " +
			"to oldest) order. Fields: " + strings.Join(SortColumns, ", ") + ".",
		nil, true,
		func(s *Searcher, v string) error {
			fields := strings.Fields(v)
			if len(fields) == 0 || len(fields) > 2 {
				return ef("Invalid sort format: '%s'", v)
			}
			if !isSortColumn(fields[0]) {
				return ef("Unknown sort field: '%s'", fields[0])
			}

			order := "asc"
			if len(fields) > 1 {
				order = strings.ToLower(fields[1])
				if order != "asc" && order != "desc" {
					return ef("Invalid sort order: '%s'", fields[1])
				}
			}
			s.Sort(fields[0], order)
			return nil
		},
	},
	"page": {
		"Shows the page of search results given, starting at 1.",
		nil, true,
		func(s *Searcher, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return ef("Invalid integer '%s' for page: %s", v, err)
			}
			s.Page(n)
			return nil
		},
	},
	"limit": {
		"Specifies the number of search results on each page.",
		nil, true,
		func(s *Searcher, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return ef("Invalid integer '%s' for limit: %s", v, err)
			}
			s.PageSize(n)
			return nil
		},
	},
}

// Commands returns the names and descriptions of every search command, in
// alphabetical order. Synonyms are not included.
func Commands() [][2]string {
	var cmds [][2]string
	for name, cmd := range commands {
		// Synonyms point to the same command, so only keep the canonical name.
		if !isCanonical(name, cmd) {
			continue
		}
		cmds = append(cmds, [2]string{name, cmd.desc})
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i][0] < cmds[j][0] })
	return cmds
}

func isCanonical(name string, cmd *command) bool {
	for _, syn := range cmd.synonyms {
		if syn == name {
			return false
		}
	}
	return true
}

// Query returns a searcher built from a query string. Words outside of curly
// braces are searched for in movie titles. Everything in curly braces is a
// command. See Commands for a list.
func Query(db *catalog.DB, query string) (*Searcher, error) {
	s := New(db)
	if err := s.Parse(query); err != nil {
		return nil, err
	}
	return s, nil
}

// Parse adds the text and commands of a query string to the search. Commands
// override parameters that were already set (like the page size), or add to
// them when they are lists (like genres).
func (s *Searcher) Parse(query string) error {
	var text []string
	for _, arg := range queryTokens(query) {
		var err error
		text, err = s.addToken(text, arg)
		if err != nil {
			return err
		}
	}
	s.Text(strings.Join(text, " "))
	return nil
}

func (s *Searcher) addToken(text []string, arg string) ([]string, error) {
	name, val := argOption(arg)
	if cmd, ok := commands[name]; ok {
		if cmd.hasArg && len(val) == 0 {
			return nil, ef("The %s command requires an argument.", name)
		} else if !cmd.hasArg && len(val) > 0 {
			return nil, ef("The %s command does not have an argument.", name)
		}
		return text, cmd.add(s, val)
	}
	if len(name) > 0 {
		return nil, ef("Unrecognized search option: %s", name)
	}
	return append(text, arg), nil
}

// queryTokens breaks a search query into tokens. Namely, a token is whitespace
// delimited, except when curly braces ('{' and '}') are present. For example,
// in the string "a b {x y z} c", there are exactly four tokens: "a", "b",
// "{x y z}" and "c".
func queryTokens(query string) []string {
	var tokens []string
	var buf []rune
	depth := 0
	for _, r := range query {
		switch {
		case r == '{':
			depth++
			buf = append(buf, r)
		case r == '}':
			depth--
			buf = append(buf, r)
			if depth <= 0 {
				depth = 0
				tokens = append(tokens, string(buf))
				buf = nil
			}
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n'):
			if len(buf) > 0 {
				tokens = append(tokens, string(buf))
			}
			buf = nil
		default:
			buf = append(buf, r)
		}
	}
	if len(buf) > 0 {
		tokens = append(tokens, string(buf))
	}
	return tokens
}

// argOption returns the name and optional value corresponding to a search
// parameter in a query string. Query params are of the form '{name[:val]}'.
func argOption(arg string) (name, val string) {
	if len(arg) < 3 {
		return
	}
	if arg[0] != '{' || arg[len(arg)-1] != '}' {
		return
	}
	arg = arg[1 : len(arg)-1]
	sep := strings.Index(arg, ":")
	if sep == -1 {
		name = arg
	} else {
		name, val = arg[0:sep], arg[sep+1:]
	}
	name, val = strings.TrimSpace(name), strings.TrimSpace(val)
	return
}

// intRange parses a range of integers of the form "x-y" and returns x and y
// as integers. If given only "x", then intRange returns x and x. A side left
// blank, as in "x-" or "-y", is nil.
func intRange(s string) (min, max *int, err error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, nil, nil
	}
	if !strings.Contains(s, "-") {
		n, err := atoi(s)
		if err != nil {
			return nil, nil, err
		}
		return n, n, nil
	}

	pcs := strings.SplitN(s, "-", 2)
	if min, err = atoi(pcs[0]); err != nil {
		return nil, nil, err
	}
	if max, err = atoi(pcs[1]); err != nil {
		return nil, nil, err
	}
	return min, max, nil
}

// atoi parses an optional integer. Blank input is nil.
func atoi(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, ef("Could not parse '%s' as integer: %s", s, err)
	}
	return &n, nil
}
