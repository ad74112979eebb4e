package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAccountRepo(db)
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	a := &domain.Account{ID: "acct-1", Name: "weekday drills", CreatedAt: created}
	require.NoError(t, repo.Create(ctx, a))

	fetched, err := repo.GetByID(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, "acct-1", fetched.ID)
	assert.Equal(t, "weekday drills", fetched.Name)
	assert.True(t, created.Equal(fetched.CreatedAt))
}

func TestAccountRepo_GetByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAccountRepo(db)
	ctx := context.Background()

	a := &domain.Account{ID: "acct-1", Name: "prep", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, a))

	fetched, err := repo.GetByName(ctx, "prep")
	require.NoError(t, err)
	assert.Equal(t, "acct-1", fetched.ID)
}

func TestAccountRepo_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAccountRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByName(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountRepo_DuplicateNameRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAccountRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &domain.Account{ID: "a1", Name: "prep", CreatedAt: now}))
	assert.Error(t, repo.Create(ctx, &domain.Account{ID: "a2", Name: "prep", CreatedAt: now}))
}

func TestAccountRepo_List_OrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAccountRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &domain.Account{ID: "a1", Name: "zeta", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, &domain.Account{ID: "a2", Name: "alpha", CreatedAt: now}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "zeta", list[1].Name)
}

func TestAccountDelete_CascadesProgress(t *testing.T) {
	db := testutil.NewTestDB(t)
	accounts := NewSQLiteAccountRepo(db)
	progress := NewSQLiteProgressRepo(db)
	ctx := context.Background()

	require.NoError(t, accounts.Create(ctx, &domain.Account{ID: "a1", Name: "prep", CreatedAt: time.Now().UTC()}))
	require.NoError(t, progress.Upsert(ctx, "a1", "Two Sum II", true))

	_, err := db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, "a1")
	require.NoError(t, err)

	m, err := progress.GetMap(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, m)
}
