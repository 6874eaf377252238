package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/database"
	"github.com/mfreitas/contas/internal/person"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreatePerson(ctx context.Context, p *person.Person) error {
	query := `
		INSERT INTO people (name, age)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, p.Name, p.Age).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating person: %w", err)
	}

	return nil
}

func (s *Store) GetPerson(ctx context.Context, id uuid.UUID) (*person.Person, error) {
	query := `SELECT id, name, age, created_at FROM people WHERE id = $1`

	var p person.Person

	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Age, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, person.ErrNotFound
		}

		return nil, fmt.Errorf("getting person: %w", err)
	}

	return &p, nil
}

func (s *Store) FindPersonByName(ctx context.Context, name string) (*person.Person, error) {
	query := `
		SELECT id, name, age, created_at
		FROM people
		WHERE name = $1
		ORDER BY created_at ASC
		LIMIT 1
	`

	var p person.Person

	err := s.db.QueryRowContext(ctx, query, name).Scan(&p.ID, &p.Name, &p.Age, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, person.ErrNotFound
		}

		return nil, fmt.Errorf("finding person by name: %w", err)
	}

	return &p, nil
}

func (s *Store) ListPersons(ctx context.Context) ([]*person.Person, error) {
	query := `SELECT id, name, age, created_at FROM people ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
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

type deleteTx struct {
	tx *sql.Tx
}

// BeginDelete opens the transaction that scopes both delete phases and takes
// the ledger write lock so deletion cannot interleave with admissions.
func (s *Store) BeginDelete(ctx context.Context) (person.DeleteTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning delete tx: %w", err)
	}

	lockKey := database.LockKey(database.LedgerWriteLock)
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring ledger write lock: %w", err)
	}

	return &deleteTx{tx: tx}, nil
}

func (dtx *deleteTx) Commit() error   { return dtx.tx.Commit() }
func (dtx *deleteTx) Rollback() error { return dtx.tx.Rollback() }

func (dtx *deleteTx) GetPerson(ctx context.Context, id uuid.UUID) (*person.Person, error) {
	query := `SELECT id, name, age, created_at FROM people WHERE id = $1`

	var p person.Person

	err := dtx.tx.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Age, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, person.ErrNotFound
		}

		return nil, fmt.Errorf("getting person: %w", err)
	}

	return &p, nil
}

// DeletePersonWithTransactions removes the person's transactions before the
// person row itself; the schema has no ON DELETE CASCADE on purpose.
func (dtx *deleteTx) DeletePersonWithTransactions(ctx context.Context, id uuid.UUID) error {
	if _, err := dtx.tx.ExecContext(ctx, `DELETE FROM transactions WHERE person_id = $1`, id); err != nil {
		return fmt.Errorf("deleting person transactions: %w", err)
	}

	if _, err := dtx.tx.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}

	return nil
}

func (dtx *deleteTx) ListCategoryIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := dtx.tx.QueryContext(ctx, `SELECT id FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("listing category ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning category id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category ids: %w", err)
	}

	return ids, nil
}

func (dtx *deleteTx) TransactionCountsByCategory(ctx context.Context) (map[uuid.UUID]int64, error) {
	query := `SELECT category_id, COUNT(*) FROM transactions GROUP BY category_id`

	rows, err := dtx.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting category transactions: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)

	for rows.Next() {
		var (
			id    uuid.UUID
			count int64
		)

		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}

		counts[id] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category counts: %w", err)
	}

	return counts, nil
}

func (dtx *deleteTx) DeleteCategories(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		if _, err := dtx.tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
			return fmt.Errorf("deleting category %s: %w", id, err)
		}
	}

	return nil
}
