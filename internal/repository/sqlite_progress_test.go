package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedAccounts satisfies the progress table's foreign key.
func seedAccounts(t *testing.T, conn *sql.DB, ids ...string) {
	t.Helper()
	repo := NewSQLiteAccountRepo(conn)
	for _, id := range ids {
		err := repo.Create(context.Background(), &domain.Account{
			ID:        id,
			Name:      "name-" + id,
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}
}

func TestProgressRepo_GetMap_EmptyOnFirstAccess(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()

	m, err := repo.GetMap(ctx, "acct-1")
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestProgressRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	seedAccounts(t, db, "acct-1")

	require.NoError(t, repo.Upsert(ctx, "acct-1", "Two Sum II", true))

	done, err := repo.Get(ctx, "acct-1", "Two Sum II")
	require.NoError(t, err)
	assert.True(t, done)

	// Upsert overwrites in place.
	require.NoError(t, repo.Upsert(ctx, "acct-1", "Two Sum II", false))
	done, err = repo.Get(ctx, "acct-1", "Two Sum II")
	require.NoError(t, err)
	assert.False(t, done)

	m, err := repo.GetMap(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionMap{"Two Sum II": false}, m)
}

func TestProgressRepo_Get_AbsentIsFalse(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()

	done, err := repo.Get(ctx, "acct-1", "Never Stored")
	require.NoError(t, err)
	assert.False(t, done)
}

func TestProgressRepo_AccountsAreIsolated(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	seedAccounts(t, db, "acct-1")

	require.NoError(t, repo.Upsert(ctx, "acct-1", "Two Sum II", true))

	done, err := repo.Get(ctx, "acct-2", "Two Sum II")
	require.NoError(t, err)
	assert.False(t, done)

	m, err := repo.GetMap(ctx, "acct-2")
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestProgressRepo_StoresUnknownTitles(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	seedAccounts(t, db, "acct-1")

	// Titles are opaque keys; catalog membership is not checked here.
	require.NoError(t, repo.Upsert(ctx, "acct-1", "Not A Catalog Question", true))

	done, err := repo.Get(ctx, "acct-1", "Not A Catalog Question")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestProgressRepo_ReplaceAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	seedAccounts(t, db, "acct-1", "acct-2")

	require.NoError(t, repo.Upsert(ctx, "acct-1", "Old Entry", true))
	require.NoError(t, repo.Upsert(ctx, "acct-2", "Other Account", true))

	replacement := domain.CompletionMap{"New Entry": true, "Another": false}
	require.NoError(t, repo.ReplaceAll(ctx, "acct-1", replacement))

	m, err := repo.GetMap(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, replacement, m)

	// Other accounts are untouched.
	other, err := repo.GetMap(ctx, "acct-2")
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionMap{"Other Account": true}, other)
}

func TestProgressRepo_ReplaceAll_EmptyMapClears(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	seedAccounts(t, db, "acct-1")

	require.NoError(t, repo.Upsert(ctx, "acct-1", "Entry", true))
	require.NoError(t, repo.ReplaceAll(ctx, "acct-1", domain.CompletionMap{}))

	m, err := repo.GetMap(ctx, "acct-1")
	require.NoError(t, err)
	assert.Empty(t, m)
}
