package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/internal/catalogtest"
)

func TestRebind(t *testing.T) {
	q := "SELECT * FROM movie WHERE mid = ? AND create_year >= ?"
	assert.Equal(t, q, catalog.Rebind("sqlite", q))
	assert.Equal(t, q, catalog.Rebind("mysql", q))
	assert.Equal(t,
		"SELECT * FROM movie WHERE mid = $1 AND create_year >= $2",
		catalog.Rebind("postgres", q))
}

func TestBinary(t *testing.T) {
	assert.Equal(t, "m.movie_name",
		(&catalog.DB{Driver: "sqlite"}).Binary("m.movie_name"))
	assert.Equal(t, `m.movie_name COLLATE "C"`,
		(&catalog.DB{Driver: "postgres"}).Binary("m.movie_name"))
	assert.Equal(t, "BINARY m.movie_name",
		(&catalog.DB{Driver: "mysql"}).Binary("m.movie_name"))
}

func TestOpenMigratesTwice(t *testing.T) {
	db := catalogtest.Open(t)
	assert.True(t, db.Empty(context.Background()))

	// Opening an up to date database must not run the migrations again.
	again, err := catalog.Open(db.Driver, dsnOf(t, db))
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestClean(t *testing.T) {
	ctx := context.Background()
	db := catalogtest.Seeded(t)
	require.False(t, db.Empty(ctx))

	require.NoError(t, db.Clean(ctx))
	assert.True(t, db.Empty(ctx))
	for _, table := range catalog.Tables {
		n, err := db.Count(ctx, "SELECT COUNT(*) FROM "+table)
		require.NoError(t, err)
		assert.Zero(t, n, table)
	}
}

func TestInserter(t *testing.T) {
	ctx := context.Background()
	db := catalogtest.Open(t)
	tx, err := db.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	ins, err := db.NewInserter(ctx, tx, 2, "director", "did", "dname")
	require.NoError(t, err)
	require.NoError(t, ins.Exec(1, "봉준호"))
	require.NoError(t, ins.Exec(2, "홍상수"))
	require.NoError(t, ins.Exec(3, "이창동"))

	// Two rows were sent when the batch filled up, the third is pending.
	var n int
	require.NoError(t, tx.QueryRow("SELECT COUNT(*) FROM director").Scan(&n))
	assert.Equal(t, 2, n)

	require.NoError(t, ins.Exec())
	require.NoError(t, tx.QueryRow("SELECT COUNT(*) FROM director").Scan(&n))
	assert.Equal(t, 3, n)

	assert.Error(t, ins.Exec(4))
	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Rollback(), "rollback after commit is a no-op")
}

func TestNewInserterErrors(t *testing.T) {
	db := catalogtest.Open(t)
	_, err := db.NewInserter(context.Background(), nil, 0, "director", "did")
	assert.Error(t, err)
	_, err = db.NewInserter(context.Background(), nil, 1, "director")
	assert.Error(t, err)
}

// dsnOf recovers the file name of a SQLite catalog.
func dsnOf(t *testing.T, db *catalog.DB) string {
	var seq int
	var name, file string
	err := db.QueryRow("PRAGMA database_list").Scan(&seq, &name, &file)
	require.NoError(t, err)
	return file
}
