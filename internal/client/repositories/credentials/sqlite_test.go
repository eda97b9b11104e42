package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestToken_EmptyWhenAbsent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	token, err := r.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestSaveAndToken(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "t1"))

	token, err := r.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", token)
}

func TestSave_OverwritesPreviousToken(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "old"))
	require.NoError(t, r.Save(ctx, "new"))

	token, err := r.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestDelete_RemovesToken_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "t1"))
	require.NoError(t, r.Delete(ctx))

	token, err := r.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)

	require.NoError(t, r.Delete(ctx))
}

func TestErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Token(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read credential")

	err = r.Save(ctx, "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save credential")

	err = r.Delete(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete credential")
}
