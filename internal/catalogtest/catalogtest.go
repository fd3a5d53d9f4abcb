// Package catalogtest provides catalog databases for tests.
package catalogtest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/cinedex/catalog"
)

// Fixture is a small catalog dump. It has titles starting with tense
// consonants (까치, 따뜻한), the very last syllable (힣), Latin titles in
// both cases, a movie with two genres, and production states that are NULL,
// empty and "None".
const Fixture = `
{"mid": 1, "movie_name": "기생충", "movie_engname": "Parasite", "create_year": 2019, "movie_type": "장편", "movie_state": "개봉", "genres": ["드라마", "스릴러"], "companies": ["바른손이앤에이"], "directors": ["봉준호"], "nations": ["한국"]}
{"mid": 2, "movie_name": "괴물", "movie_engname": "The Host", "create_year": 2006, "movie_type": "장편", "movie_state": "개봉", "genres": ["드라마", "SF"], "companies": ["청어람"], "directors": ["봉준호"], "nations": ["한국"]}
{"mid": 3, "movie_name": "까치", "movie_engname": "Magpie", "create_year": 1990, "movie_type": "단편", "movie_state": "None", "genres": ["드라마"], "directors": ["김선희"], "nations": ["한국"]}
{"mid": 4, "movie_name": "나의 사랑", "movie_engname": "My Love", "create_year": 2001, "movie_type": "장편", "movie_state": "", "genres": ["로맨스"], "directors": ["이정민"], "nations": ["한국"]}
{"mid": 5, "movie_name": "다만 악에서 구하소서", "movie_engname": "Deliver Us from Evil", "create_year": 2020, "movie_type": "장편", "movie_state": "개봉", "genres": ["액션"], "companies": ["하이브미디어코프"], "directors": ["홍원찬"], "nations": ["한국"]}
{"mid": 6, "movie_name": "따뜻한 겨울", "movie_engname": "Warm Winter", "create_year": 2015, "movie_type": "단편", "movie_state": "제작중", "genres": ["드라마"], "directors": ["박서연"], "nations": ["한국"]}
{"mid": 7, "movie_name": "하하하", "movie_engname": "Hahaha", "create_year": 2010, "movie_type": "장편", "movie_state": "개봉", "genres": ["코미디"], "directors": ["홍상수"], "nations": ["한국"]}
{"mid": 8, "movie_name": "힣", "movie_engname": "", "create_year": 2022, "movie_type": "단편", "movie_state": " None ", "genres": ["실험"], "directors": ["최하늘"], "nations": ["한국"]}
{"mid": 9, "movie_name": "Alien", "movie_engname": "Alien", "create_year": 1979, "movie_type": "장편", "movie_state": "개봉", "genres": ["SF", "공포"], "companies": ["20th Century Fox"], "directors": ["Ridley Scott"], "nations": ["미국", "영국"]}
{"mid": 10, "movie_name": "avatar", "movie_engname": "Avatar", "create_year": 2009, "movie_type": "장편", "movie_state": "개봉", "genres": ["SF"], "directors": ["James Cameron"], "nations": ["미국"]}
{"mid": 11, "movie_name": "마더", "movie_engname": "Mother", "create_year": 2009, "movie_type": "장편", "movie_state": "개봉", "genres": ["드라마", "미스터리"], "directors": ["봉준호"], "nations": ["한국"]}
{"mid": 12, "movie_name": "빵과 장미", "movie_engname": "Bread and Roses", "create_year": 2000, "movie_type": "장편", "movie_state": "개봉", "genres": ["드라마"], "directors": ["Ken Loach"], "nations": ["영국", "독일"]}
`

// FixtureMovies is the number of movies in Fixture.
const FixtureMovies = 12

// Open returns an empty, migrated catalog in a temporary SQLite database.
// It is closed when the test finishes.
func Open(t testing.TB) *catalog.DB {
	t.Helper()
	db, err := catalog.Open("sqlite", filepath.Join(t.TempDir(), "cinedex.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// Seeded is like Open, but the catalog is loaded with Fixture.
func Seeded(t testing.TB) *catalog.DB {
	t.Helper()
	db := Open(t)
	stats, err := db.Load(context.Background(), strings.NewReader(Fixture), nil)
	require.NoError(t, err)
	require.Equal(t, FixtureMovies, stats.Movies)
	return db
}
