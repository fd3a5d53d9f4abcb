package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/cinedex/internal/catalogtest"
)

func TestLoadFacets(t *testing.T) {
	ctx := context.Background()
	db := catalogtest.Seeded(t)

	// Values that only an unmanaged database would have.
	_, err := db.Exec(`
		INSERT INTO movie (mid, movie_name, create_year, movie_type, movie_state)
		VALUES (100, '없음', 1999, '', ' None ')
		`)
	require.NoError(t, err)

	f, err := db.LoadFacets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"단편", "장편"}, f.Types)
	assert.Equal(t, []string{"개봉", "제작중"}, f.States)
	assert.Equal(t, []string{
		"SF", "공포", "드라마", "로맨스", "미스터리", "스릴러", "실험", "액션", "코미디",
	}, f.Genres)
	assert.Equal(t, []string{"독일", "미국", "영국", "한국"}, f.Nations)
}

func TestLoadFacetsEmpty(t *testing.T) {
	f, err := catalogtest.Open(t).LoadFacets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, f.Types)
	assert.Empty(t, f.States)
	assert.Empty(t, f.Genres)
	assert.Empty(t, f.Nations)
}
