package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=person
type Repository interface {
	CreatePerson(ctx context.Context, p *Person) error
	GetPerson(ctx context.Context, id uuid.UUID) (*Person, error)
	FindPersonByName(ctx context.Context, name string) (*Person, error)
	ListPersons(ctx context.Context) ([]*Person, error)

	BeginDelete(ctx context.Context) (DeleteTx, error)
}

// DeleteTx scopes both phases of a person deletion to one store transaction:
// first the person and every transaction they own, then the sweep that
// removes categories left without any referencing transaction.
type DeleteTx interface {
	GetPerson(ctx context.Context, id uuid.UUID) (*Person, error)
	DeletePersonWithTransactions(ctx context.Context, id uuid.UUID) error

	ListCategoryIDs(ctx context.Context) ([]uuid.UUID, error)
	TransactionCountsByCategory(ctx context.Context) (map[uuid.UUID]int64, error)
	DeleteCategories(ctx context.Context, ids []uuid.UUID) error

	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Person, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p := &Person{
		Name: params.Name,
		Age:  params.Age,
	}
	if err := s.repo.CreatePerson(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Person, error) {
	return s.repo.GetPerson(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (*Person, error) {
	return s.repo.FindPersonByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]*Person, error) {
	return s.repo.ListPersons(ctx)
}

// Delete removes a person, all transactions they own, and every category
// that has no transactions left once theirs are gone. It returns how many
// categories the sweep removed.
//
// The sweep always walks the whole category set: a category can lose its
// last transactions through this deletion even when other people also used
// it in the past.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (int, error) {
	dtx, err := s.repo.BeginDelete(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin delete: %w", err)
	}
	defer dtx.Rollback()

	if _, err := dtx.GetPerson(ctx, id); err != nil {
		return 0, err
	}

	if err := dtx.DeletePersonWithTransactions(ctx, id); err != nil {
		return 0, fmt.Errorf("delete person: %w", err)
	}

	ids, err := dtx.ListCategoryIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list categories: %w", err)
	}

	counts, err := dtx.TransactionCountsByCategory(ctx)
	if err != nil {
		return 0, fmt.Errorf("count category transactions: %w", err)
	}

	var orphans []uuid.UUID

	for _, cid := range ids {
		if counts[cid] == 0 {
			orphans = append(orphans, cid)
		}
	}

	if len(orphans) > 0 {
		if err := dtx.DeleteCategories(ctx, orphans); err != nil {
			return 0, fmt.Errorf("delete orphan categories: %w", err)
		}
	}

	if err := dtx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete: %w", err)
	}

	return len(orphans), nil
}
