package catalog

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Facets are the distinct values present in the catalog for each filter
// that takes a list of values. They are what a search form offers as
// choices.
type Facets struct {
	Types   []string `json:"types"`
	States  []string `json:"states"`
	Genres  []string `json:"genres"`
	Nations []string `json:"nations"`
}

// LoadFacets reads the available types, production states, genres and
// nations. NULL and empty values are never included, and neither are states
// that only say "None".
func (db *DB) LoadFacets(ctx context.Context) (*Facets, error) {
	f := new(Facets)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		f.Types, err = db.distinct(ctx, "movie", "movie_type")
		return
	})
	g.Go(func() error {
		states, err := db.distinct(ctx, "movie", "movie_state")
		if err != nil {
			return err
		}
		for _, s := range states {
			if !isNoneState(s) {
				f.States = append(f.States, s)
			}
		}
		return nil
	})
	g.Go(func() (err error) {
		f.Genres, err = db.distinct(ctx, "movie_genre", "genre")
		return
	})
	g.Go(func() (err error) {
		f.Nations, err = db.distinct(ctx, "movie_nation", "nation")
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}

func (db *DB) distinct(ctx context.Context, table, column string) ([]string, error) {
	q := sf(`
		SELECT DISTINCT %s FROM %s
		WHERE %s IS NOT NULL AND %s <> ''
		`, column, table, column, column)
	vals, err := db.texts(ctx, q)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read distinct %s.%s",
			table, column)
	}
	sort.Strings(vals)
	return vals, nil
}
