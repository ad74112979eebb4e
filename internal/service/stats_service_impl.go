package service

import (
	"context"
	"fmt"

	"github.com/mvillan/patterndrill/internal/contract"
	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/reconcile"
	"github.com/mvillan/patterndrill/internal/repository"
)

type statsService struct {
	reconciler *reconcile.Reconciler
	catalog    *domain.Catalog
	progress   repository.ProgressRepo
}

func NewStatsService(reconciler *reconcile.Reconciler, catalog *domain.Catalog, progress repository.ProgressRepo) StatsService {
	return &statsService{reconciler: reconciler, catalog: catalog, progress: progress}
}

func (s *statsService) Overview(ctx context.Context, account *domain.Account) (*contract.StatsOverview, error) {
	m, err := s.progress.GetMap(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("loading completion map: %w", err)
	}

	overview := &contract.StatsOverview{
		Account:            account.Name,
		TotalQuestions:     s.reconciler.TotalQuestions(),
		CompletedQuestions: s.reconciler.TotalCompleted(m),
	}

	// Per-part progress covers the pattern libraries only; filter parts
	// hold topic phrases, not questions.
	for _, p := range s.catalog.Parts {
		if reconcile.IsFilterPart(p.Name) {
			continue
		}
		total, completed := s.reconciler.PartCounts(p.Name, m)
		overview.Parts = append(overview.Parts, contract.PartProgress{
			Part:      p.Name,
			Total:     total,
			Completed: completed,
		})
	}

	for _, f := range []domain.FilterID{domain.FilterSolo, domain.FilterHybrid} {
		overview.Filters = append(overview.Filters, contract.FilterProgress{
			Filter:    f,
			Implied:   s.reconciler.CountImplied(f),
			Completed: s.reconciler.CountCompleted(f, m),
		})
	}

	return overview, nil
}
