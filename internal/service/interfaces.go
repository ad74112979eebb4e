package service

import (
	"context"

	"github.com/mvillan/patterndrill/internal/contract"
	"github.com/mvillan/patterndrill/internal/domain"
)

type AccountService interface {
	// Resolve returns the account with the given name, creating it on
	// first use.
	Resolve(ctx context.Context, name string) (*domain.Account, error)
	Create(ctx context.Context, name string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}

type ProgressService interface {
	Get(ctx context.Context, accountID string) (domain.CompletionMap, error)
	// Toggle flips one title's completed state atomically, treating an
	// absent entry as false, and returns the full updated map.
	Toggle(ctx context.Context, accountID, title string) (*contract.ToggleResult, error)
	// BulkReplace discards the stored map and replaces it wholesale.
	BulkReplace(ctx context.Context, accountID string, m domain.CompletionMap) (domain.CompletionMap, error)
}

type StatsService interface {
	Overview(ctx context.Context, account *domain.Account) (*contract.StatsOverview, error)
}
