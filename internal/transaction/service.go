package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/person"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]*Transaction, error)

	BeginWrite(ctx context.Context) (WriteTx, error)
}

// WriteTx is a serialized ledger write. Person and category resolution
// happens inside it so an admitted transaction cannot end up referencing a
// row that a concurrent person deletion already removed.
type WriteTx interface {
	GetPerson(ctx context.Context, id uuid.UUID) (*person.Person, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error)
	CreateTransaction(ctx context.Context, tx *Transaction) error

	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create admits and persists a single transaction. Admission failures come
// back unwrapped so callers can match the exact reason.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	wtx, err := s.repo.BeginWrite(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin write: %w", err)
	}
	defer wtx.Rollback()

	tx, err := admitOne(ctx, wtx, params)
	if err != nil {
		return nil, err
	}

	if err := wtx.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	if err := wtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit write: %w", err)
	}

	return tx, nil
}

// CreateBatch admits and persists a batch inside one write transaction.
// The first rejected row aborts the whole batch; there is no partial import.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	wtx, err := s.repo.BeginWrite(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin write: %w", err)
	}
	defer wtx.Rollback()

	txs := make([]*Transaction, 0, len(params))

	for i, p := range params {
		tx, err := admitOne(ctx, wtx, p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		if err := wtx.CreateTransaction(ctx, tx); err != nil {
			return nil, fmt.Errorf("row %d: create transaction: %w", i+1, err)
		}

		txs = append(txs, tx)
	}

	if err := wtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit write: %w", err)
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// admitOne resolves the referenced person and category within the write
// transaction and runs the admission checks. A lookup miss becomes a nil
// argument to Admit, which reports it in rule order.
func admitOne(ctx context.Context, wtx WriteTx, params CreateParams) (*Transaction, error) {
	p, err := wtx.GetPerson(ctx, params.PersonID)
	if err != nil && !errors.Is(err, person.ErrNotFound) {
		return nil, fmt.Errorf("resolve person: %w", err)
	}

	c, err := wtx.GetCategory(ctx, params.CategoryID)
	if err != nil && !errors.Is(err, category.ErrNotFound) {
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	if err := Admit(params, p, c); err != nil {
		return nil, err
	}

	return &Transaction{
		Description: params.Description,
		Amount:      params.Amount,
		Kind:        params.Kind,
		PersonID:    params.PersonID,
		CategoryID:  params.CategoryID,
	}, nil
}
