package repository

import (
	"context"

	"github.com/mvillan/patterndrill/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByName(ctx context.Context, name string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}

// ProgressRepo owns the persisted completion map of one account. The store
// does not validate titles against the catalog; unknown titles are stored
// as-is (title equality is the only key in the system).
type ProgressRepo interface {
	GetMap(ctx context.Context, accountID string) (domain.CompletionMap, error)
	Get(ctx context.Context, accountID, title string) (bool, error)
	Upsert(ctx context.Context, accountID, title string, completed bool) error
	ReplaceAll(ctx context.Context, accountID string, m domain.CompletionMap) error
}
