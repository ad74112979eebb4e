package service

import (
	"context"
	"testing"

	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/reconcile"
	"github.com/mvillan/patterndrill/internal/repository"
	"github.com/mvillan/patterndrill/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsFixture(t *testing.T) (StatsService, ProgressService, *domain.Account) {
	t.Helper()
	db := testutil.NewTestDB(t)
	cat := testutil.NewTestCatalog()
	rec := reconcile.New(cat)

	progressRepo := repository.NewSQLiteProgressRepo(db)
	accounts := NewAccountService(repository.NewSQLiteAccountRepo(db))
	progress := NewProgressService(progressRepo, testutil.NewTestUoW(db))
	stats := NewStatsService(rec, cat, progressRepo)

	account, err := accounts.Create(context.Background(), "tester")
	require.NoError(t, err)
	return stats, progress, account
}

func TestStatsService_Overview_FreshAccount(t *testing.T) {
	stats, _, account := newStatsFixture(t)

	overview, err := stats.Overview(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, "tester", overview.Account)
	assert.Equal(t, 9, overview.TotalQuestions)
	assert.Equal(t, 0, overview.CompletedQuestions)

	// The two pattern libraries only; filter parts hold phrases.
	require.Len(t, overview.Parts, 2)
	assert.Equal(t, domain.PartSoloPatterns, overview.Parts[0].Part)
	assert.Equal(t, 7, overview.Parts[0].Total)
	assert.Equal(t, domain.PartHybridPatterns, overview.Parts[1].Part)
	assert.Equal(t, 2, overview.Parts[1].Total)

	require.Len(t, overview.Filters, 2)
	assert.Equal(t, domain.FilterSolo, overview.Filters[0].Filter)
	assert.Equal(t, 3, overview.Filters[0].Implied)
	assert.Equal(t, 0, overview.Filters[0].Completed)
	assert.Equal(t, domain.FilterHybrid, overview.Filters[1].Filter)
	assert.Equal(t, 1, overview.Filters[1].Implied)
}

func TestStatsService_Overview_ReflectsToggles(t *testing.T) {
	stats, progress, account := newStatsFixture(t)
	ctx := context.Background()

	// One recommended solo question, one warmup question.
	_, err := progress.Toggle(ctx, account.ID, "Two Sum II")
	require.NoError(t, err)
	_, err = progress.Toggle(ctx, account.ID, "FizzBuzz")
	require.NoError(t, err)

	overview, err := stats.Overview(ctx, account)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.CompletedQuestions)
	assert.Equal(t, 2, overview.Parts[0].Completed)
	assert.Equal(t, 1, overview.Filters[0].Completed)
	assert.Equal(t, 0, overview.Filters[1].Completed)
}
