package catalog_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/internal/catalogtest"
)

func TestDetailsByID(t *testing.T) {
	db := catalogtest.Seeded(t)
	d, err := db.DetailsByID(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, "Alien", d.Name)
	assert.Equal(t, 1979, d.Year)
	assert.Equal(t, "Alien (1979)", d.String())
	assert.Equal(t, []string{"SF", "공포"}, d.Genres)
	assert.Equal(t, []string{"20th Century Fox"}, d.Companies)
	assert.Equal(t, []string{"Ridley Scott"}, d.Directors)
	assert.Equal(t, []string{"미국", "영국"}, d.Nations)
}

func TestMovieNotFound(t *testing.T) {
	db := catalogtest.Seeded(t)
	_, err := db.MovieByID(context.Background(), 999)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))

	_, err = db.DetailsByID(context.Background(), 999)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestMovieStateNormalized(t *testing.T) {
	db := catalogtest.Seeded(t)
	for _, mid := range []int64{3, 4, 8} {
		m, err := db.MovieByID(context.Background(), mid)
		require.NoError(t, err)
		assert.Equal(t, "", m.State, "movie %d", mid)
	}
	m, err := db.MovieByID(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, "제작중", m.State)
}

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		in   sql.NullString
		want string
	}{
		{sql.NullString{}, ""},
		{sql.NullString{String: "", Valid: true}, ""},
		{sql.NullString{String: "None", Valid: true}, ""},
		{sql.NullString{String: "  None\t", Valid: true}, ""},
		{sql.NullString{String: "개봉", Valid: true}, "개봉"},
		{sql.NullString{String: "none", Valid: true}, "none"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, catalog.NormalizeState(test.in), "%#v", test.in)
	}
}
