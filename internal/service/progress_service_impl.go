package service

import (
	"context"
	"fmt"

	"github.com/mvillan/patterndrill/internal/contract"
	"github.com/mvillan/patterndrill/internal/db"
	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/repository"
)

type progressService struct {
	progress repository.ProgressRepo
	uow      db.UnitOfWork
}

func NewProgressService(progress repository.ProgressRepo, uow db.UnitOfWork) ProgressService {
	return &progressService{progress: progress, uow: uow}
}

func (s *progressService) Get(ctx context.Context, accountID string) (domain.CompletionMap, error) {
	return s.progress.GetMap(ctx, accountID)
}

func (s *progressService) Toggle(ctx context.Context, accountID, title string) (*contract.ToggleResult, error) {
	if title == "" {
		return nil, fmt.Errorf("question title is required")
	}

	var result *contract.ToggleResult
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)

		// Read-modify-write inside the transaction: concurrent toggles
		// for the same account serialize here, so no flip is lost.
		current, err := txProgress.Get(ctx, accountID, title)
		if err != nil {
			return err
		}
		if err := txProgress.Upsert(ctx, accountID, title, !current); err != nil {
			return err
		}

		m, err := txProgress.GetMap(ctx, accountID)
		if err != nil {
			return err
		}
		result = &contract.ToggleResult{
			Question:           title,
			Completed:          !current,
			CompletedQuestions: m,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggling %q: %w", title, err)
	}
	return result, nil
}

func (s *progressService) BulkReplace(ctx context.Context, accountID string, m domain.CompletionMap) (domain.CompletionMap, error) {
	var stored domain.CompletionMap
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		if err := txProgress.ReplaceAll(ctx, accountID, m); err != nil {
			return err
		}
		var err error
		stored, err = txProgress.GetMap(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("replacing completion map: %w", err)
	}
	return stored, nil
}
