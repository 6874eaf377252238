// Package export writes the full ledger as a semicolon-separated CSV
// that the ledgercsv importer can read back.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfreitas/contas/internal/report"
	"github.com/mfreitas/contas/internal/transaction"
)

var header = []string{"Descrição", "Montante", "Pessoa", "Categoria"}

// Service renders ledger snapshots to CSV.
type Service struct {
	ledger report.Repository
}

func NewService(ledger report.Repository) *Service {
	return &Service{ledger: ledger}
}

// WriteCSV streams the whole ledger to w. Person and category references
// are resolved to display names so the file stands on its own.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer) error {
	snap, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("loading ledger snapshot: %w", err)
	}

	people := make(map[uuid.UUID]string, len(snap.People))
	for _, p := range snap.People {
		people[p.ID] = p.Name
	}

	categories := make(map[uuid.UUID]string, len(snap.Categories))
	for _, c := range snap.Categories {
		categories[c.ID] = c.Description
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, t := range snap.Transactions {
		personName, ok := people[t.PersonID]
		if !ok {
			return fmt.Errorf("transaction %s references unknown person %s", t.ID, t.PersonID)
		}

		categoryName, ok := categories[t.CategoryID]
		if !ok {
			return fmt.Errorf("transaction %s references unknown category %s", t.ID, t.CategoryID)
		}

		row := []string{t.Description, formatAmount(t), personName, categoryName}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", t.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// formatAmount renders cents as a signed European decimal, e.g. -85,40
// for an expense of 8540 cents.
func formatAmount(t *transaction.Transaction) string {
	cents := t.Amount
	if t.Kind == transaction.KindExpense {
		cents = -cents
	}

	d := decimal.New(cents, -2)

	return decimalComma(d.StringFixed(2))
}

func decimalComma(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c == '.' {
			b[i] = ','
		}
	}

	return string(b)
}
