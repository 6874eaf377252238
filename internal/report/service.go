package report

import (
	"context"
	"fmt"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/person"
	"github.com/mfreitas/contas/internal/transaction"
)

// Snapshot is a consistent read of the whole ledger; both reports are pure
// folds over it.
type Snapshot struct {
	People       []*person.Person
	Categories   []*category.Category
	Transactions []*transaction.Transaction
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ByPerson(ctx context.Context) (PersonReport, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return PersonReport{}, fmt.Errorf("reading ledger snapshot: %w", err)
	}

	return ByPerson(snap.People, snap.Transactions), nil
}

func (s *Service) ByCategory(ctx context.Context) (CategoryReport, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return CategoryReport{}, fmt.Errorf("reading ledger snapshot: %w", err)
	}

	return ByCategory(snap.Categories, snap.Transactions), nil
}
