package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/repository"
)

type accountService struct {
	accounts repository.AccountRepo
}

func NewAccountService(accounts repository.AccountRepo) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) Resolve(ctx context.Context, name string) (*domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("account name is required")
	}

	a, err := s.accounts.GetByName(ctx, name)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	// First use: provision lazily, like the completion map itself.
	return s.Create(ctx, name)
}

func (s *accountService) Create(ctx context.Context, name string) (*domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("account name is required")
	}

	a := &domain.Account{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creating account %q: %w", name, err)
	}
	return a, nil
}

func (s *accountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.List(ctx)
}
