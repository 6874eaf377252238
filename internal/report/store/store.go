package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/person"
	"github.com/mfreitas/contas/internal/report"
	"github.com/mfreitas/contas/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Snapshot reads people, categories and transactions inside one read-only
// SQL transaction so the grand totals reconcile against the same state the
// rows were grouped from.
func (s *Store) Snapshot(ctx context.Context) (*report.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("beginning snapshot tx: %w", err)
	}
	defer tx.Rollback()

	snap := &report.Snapshot{}

	if snap.People, err = listPeople(ctx, tx); err != nil {
		return nil, err
	}

	if snap.Categories, err = listCategories(ctx, tx); err != nil {
		return nil, err
	}

	if snap.Transactions, err = listTransactions(ctx, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing snapshot tx: %w", err)
	}

	return snap, nil
}

func listPeople(ctx context.Context, tx *sql.Tx) ([]*person.Person, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, name, age, created_at FROM people ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	var people []*person.Person

	for rows.Next() {
		var p person.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}

		people = append(people, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}

	return people, nil
}

func listCategories(ctx context.Context, tx *sql.Tx) ([]*category.Category, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, description, purpose, created_at FROM categories ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		var (
			c       category.Category
			purpose string
		)

		if err := rows.Scan(&c.ID, &c.Description, &purpose, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		c.Purpose = category.Purpose(purpose)
		cats = append(cats, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return cats, nil
}

func listTransactions(ctx context.Context, tx *sql.Tx) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, description, amount, kind, person_id, category_id, created_at
		FROM transactions
		ORDER BY created_at ASC
	`

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		var (
			t    transaction.Transaction
			kind string
		)

		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &kind, &t.PersonID, &t.CategoryID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		t.Kind = transaction.Kind(kind)
		txs = append(txs, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}
