package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/database"
	"github.com/mfreitas/contas/internal/person"
	"github.com/mfreitas/contas/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, description, amount, kind, person_id, category_id, created_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var (
		tx   transaction.Transaction
		kind string
	)

	if err := s.Scan(
		&tx.ID, &tx.Description, &tx.Amount, &kind,
		&tx.PersonID, &tx.CategoryID, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Kind = transaction.Kind(kind)

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.description, t.amount, t.kind, t.person_id, t.category_id, t.created_at
`

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		ORDER BY t.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

type writeTx struct {
	tx *sql.Tx
}

// BeginWrite opens a ledger write transaction holding the shared advisory
// lock, so admissions and cascade deletes never interleave.
func (s *Store) BeginWrite(ctx context.Context) (transaction.WriteTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning write tx: %w", err)
	}

	lockKey := database.LockKey(database.LedgerWriteLock)
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring ledger write lock: %w", err)
	}

	return &writeTx{tx: tx}, nil
}

func (wtx *writeTx) Commit() error   { return wtx.tx.Commit() }
func (wtx *writeTx) Rollback() error { return wtx.tx.Rollback() }

func (wtx *writeTx) GetPerson(ctx context.Context, id uuid.UUID) (*person.Person, error) {
	query := `SELECT id, name, age, created_at FROM people WHERE id = $1`

	var p person.Person

	err := wtx.tx.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Age, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, person.ErrNotFound
		}

		return nil, fmt.Errorf("getting person: %w", err)
	}

	return &p, nil
}

func (wtx *writeTx) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT id, description, purpose, created_at FROM categories WHERE id = $1`

	var (
		c       category.Category
		purpose string
	)

	err := wtx.tx.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Description, &purpose, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	c.Purpose = category.Purpose(purpose)

	return &c, nil
}

func (wtx *writeTx) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (description, amount, kind, person_id, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := wtx.tx.QueryRowContext(ctx, query,
		tx.Description,
		tx.Amount,
		tx.Kind,
		tx.PersonID,
		tx.CategoryID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}
