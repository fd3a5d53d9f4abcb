package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/cinedex/internal/catalogtest"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	db := catalogtest.Open(t)
	stats, err := db.Load(ctx, strings.NewReader(catalogtest.Fixture), nil)
	require.NoError(t, err)
	assert.Equal(t, catalogtest.FixtureMovies, stats.Movies)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 10, stats.Directors)

	counts := map[string]int{
		"movie":         12,
		"director":      10,
		"casting":       12,
		"movie_genre":   16,
		"movie_company": 4,
		"movie_nation":  14,
	}
	for table, want := range counts {
		n, err := db.Count(ctx, "SELECT COUNT(*) FROM "+table)
		require.NoError(t, err)
		assert.Equal(t, want, n, table)
	}

	dirs, err := db.Directors(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, []string{"봉준호"}, dirs)
}

func TestLoadReusesDirectorsAndSkips(t *testing.T) {
	ctx := context.Background()
	db := catalogtest.Seeded(t)

	var warnings []string
	warn := func(format string, v ...interface{}) {
		warnings = append(warnings, format)
	}
	more := `
		{"movie_name": "설국열차", "movie_engname": "Snowpiercer", "create_year": 2013, "genres": ["SF", " SF ", ""], "directors": ["봉준호", "봉준호"]}
		{"mid": 1, "movie_name": "중복"}
		{"movie_name": "   "}
	`
	stats, err := db.Load(ctx, strings.NewReader(more), warn)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Movies)
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, 0, stats.Directors)
	assert.Len(t, warnings, 2)

	// The new movie gets the next free identifier.
	d, err := db.DetailsByID(ctx, 13)
	require.NoError(t, err)
	assert.Equal(t, "설국열차", d.Name)
	assert.Equal(t, []string{"SF"}, d.Genres)
	assert.Equal(t, []string{"봉준호"}, d.Directors)

	n, err := db.Count(ctx, "SELECT COUNT(*) FROM director WHERE dname = ?", "봉준호")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoadMalformedRollsBack(t *testing.T) {
	ctx := context.Background()
	db := catalogtest.Open(t)
	bad := `{"mid": 1, "movie_name": "기생충", "create_year": 2019}
		{"mid": 2, "movie_name": `
	_, err := db.Load(ctx, strings.NewReader(bad), nil)
	require.Error(t, err)
	assert.True(t, db.Empty(ctx))
}

func TestLoadTrailingWhitespace(t *testing.T) {
	ctx := context.Background()
	dumps := []string{
		`{"mid": 1, "movie_name": "기생충", "create_year": 2019}`,
		`{"mid": 1, "movie_name": "기생충", "create_year": 2019}` + "\n",
		"\n" + `{"mid": 1, "movie_name": "기생충", "create_year": 2019}` + "\n\n\r\n",
	}
	for _, dump := range dumps {
		db := catalogtest.Open(t)
		stats, err := db.Load(ctx, strings.NewReader(dump), nil)
		require.NoError(t, err, "%q", dump)
		assert.Equal(t, 1, stats.Movies, "%q", dump)
	}

	stats, err := catalogtest.Open(t).Load(ctx, strings.NewReader("\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Movies)
}
