package report

import (
	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/person"
	"github.com/mfreitas/contas/internal/transaction"
)

// Totals is an income/expense/balance triple in cents. Income and expense
// are sums of positive amounts; balance is income minus expense and may go
// negative.
type Totals struct {
	Income  int64
	Expense int64
	Balance int64
}

func (t *Totals) add(tx *transaction.Transaction) {
	switch tx.Kind {
	case transaction.KindIncome:
		t.Income += tx.Amount
	case transaction.KindExpense:
		t.Expense += tx.Amount
	}

	t.Balance = t.Income - t.Expense
}

type PersonRow struct {
	PersonID uuid.UUID
	Name     string
	Totals
}

type CategoryRow struct {
	CategoryID  uuid.UUID
	Description string
	Totals
}

type PersonReport struct {
	Rows       []PersonRow
	GrandTotal Totals
}

type CategoryReport struct {
	Rows       []CategoryRow
	GrandTotal Totals
}

// ByPerson folds the transaction set into one row per person. People with
// no transactions still get a row of zeros. The grand total is computed
// over the ungrouped transaction list, so summing the rows reproduces it.
func ByPerson(people []*person.Person, txs []*transaction.Transaction) PersonReport {
	perKey, grand := accumulate(txs, func(tx *transaction.Transaction) uuid.UUID {
		return tx.PersonID
	})

	rows := make([]PersonRow, 0, len(people))
	for _, p := range people {
		rows = append(rows, PersonRow{
			PersonID: p.ID,
			Name:     p.Name,
			Totals:   perKey[p.ID],
		})
	}

	return PersonReport{Rows: rows, GrandTotal: grand}
}

// ByCategory is the same fold keyed by category.
func ByCategory(cats []*category.Category, txs []*transaction.Transaction) CategoryReport {
	perKey, grand := accumulate(txs, func(tx *transaction.Transaction) uuid.UUID {
		return tx.CategoryID
	})

	rows := make([]CategoryRow, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, CategoryRow{
			CategoryID:  c.ID,
			Description: c.Description,
			Totals:      perKey[c.ID],
		})
	}

	return CategoryReport{Rows: rows, GrandTotal: grand}
}

func accumulate(txs []*transaction.Transaction, keyOf func(*transaction.Transaction) uuid.UUID) (map[uuid.UUID]Totals, Totals) {
	perKey := make(map[uuid.UUID]Totals)

	var grand Totals

	for _, tx := range txs {
		key := keyOf(tx)

		t := perKey[key]
		t.add(tx)
		perKey[key] = t

		grand.add(tx)
	}

	return perKey, grand
}
