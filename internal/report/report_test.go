package report_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/person"
	"github.com/mfreitas/contas/internal/report"
	"github.com/mfreitas/contas/internal/transaction"
)

func tx(personID, categoryID uuid.UUID, kind transaction.Kind, cents int64) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          uuid.New(),
		Description: "mv",
		Amount:      cents,
		Kind:        kind,
		PersonID:    personID,
		CategoryID:  categoryID,
	}
}

func TestByPerson_GrandTotal(t *testing.T) {
	x := &person.Person{ID: uuid.New(), Name: "X", Age: 30}
	y := &person.Person{ID: uuid.New(), Name: "Y", Age: 30}
	c := &category.Category{ID: uuid.New(), Description: "Geral", Purpose: category.PurposeBoth}

	txs := []*transaction.Transaction{
		tx(x.ID, c.ID, transaction.KindIncome, 10000),
		tx(y.ID, c.ID, transaction.KindExpense, 4000),
	}

	rep := report.ByPerson([]*person.Person{x, y}, txs)

	assert.Equal(t, int64(10000), rep.GrandTotal.Income)
	assert.Equal(t, int64(4000), rep.GrandTotal.Expense)
	assert.Equal(t, int64(6000), rep.GrandTotal.Balance)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, report.Totals{Income: 10000, Balance: 10000}, rep.Rows[0].Totals)
	assert.Equal(t, report.Totals{Expense: 4000, Balance: -4000}, rep.Rows[1].Totals)
}

func TestByPerson_ZeroTransactionPersonGetsZeroRow(t *testing.T) {
	idle := &person.Person{ID: uuid.New(), Name: "Idle", Age: 50}

	rep := report.ByPerson([]*person.Person{idle}, nil)

	require.Len(t, rep.Rows, 1)
	assert.Equal(t, report.Totals{}, rep.Rows[0].Totals)
	assert.Equal(t, report.Totals{}, rep.GrandTotal)
}

func TestByCategory_ZeroTransactionCategoryGetsZeroRow(t *testing.T) {
	used := &category.Category{ID: uuid.New(), Description: "Casa", Purpose: category.PurposeExpense}
	idle := &category.Category{ID: uuid.New(), Description: "Férias", Purpose: category.PurposeBoth}
	p := uuid.New()

	rep := report.ByCategory(
		[]*category.Category{used, idle},
		[]*transaction.Transaction{tx(p, used.ID, transaction.KindExpense, 1234)},
	)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, report.Totals{Expense: 1234, Balance: -1234}, rep.Rows[0].Totals)
	assert.Equal(t, report.Totals{}, rep.Rows[1].Totals)
}

func TestBalanceIsExactPerRow(t *testing.T) {
	p := &person.Person{ID: uuid.New(), Name: "P", Age: 30}
	c := &category.Category{ID: uuid.New(), Description: "Geral", Purpose: category.PurposeBoth}

	txs := []*transaction.Transaction{
		tx(p.ID, c.ID, transaction.KindIncome, 1),    // 0.01
		tx(p.ID, c.ID, transaction.KindIncome, 2),    // 0.02
		tx(p.ID, c.ID, transaction.KindExpense, 10),  // 0.10
		tx(p.ID, c.ID, transaction.KindExpense, 305), // 3.05
	}

	rep := report.ByPerson([]*person.Person{p}, txs)

	require.Len(t, rep.Rows, 1)
	row := rep.Rows[0]
	assert.Equal(t, int64(3), row.Income)
	assert.Equal(t, int64(315), row.Expense)
	assert.Equal(t, row.Income-row.Expense, row.Balance)
	assert.Equal(t, int64(-312), row.Balance)
}

// Summing per-group figures must reproduce the grand total, and both
// groupings must agree with the ungrouped transaction list, for any
// transaction set.
func TestCrossAggregationReconciliation(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	var (
		people []*person.Person
		cats   []*category.Category
	)

	for i := 0; i < 5; i++ {
		people = append(people, &person.Person{ID: uuid.New(), Name: "P", Age: 20 + i})
		cats = append(cats, &category.Category{ID: uuid.New(), Description: "C", Purpose: category.PurposeBoth})
	}

	var txs []*transaction.Transaction

	var wantIncome, wantExpense int64

	for i := 0; i < 500; i++ {
		kind := transaction.KindExpense
		if rng.IntN(2) == 0 {
			kind = transaction.KindIncome
		}

		cents := rng.Int64N(1_000_000) + 1

		if kind == transaction.KindIncome {
			wantIncome += cents
		} else {
			wantExpense += cents
		}

		txs = append(txs, tx(people[rng.IntN(len(people))].ID, cats[rng.IntN(len(cats))].ID, kind, cents))
	}

	byPerson := report.ByPerson(people, txs)
	byCategory := report.ByCategory(cats, txs)

	var rowIncome, rowExpense int64
	for _, r := range byPerson.Rows {
		rowIncome += r.Income
		rowExpense += r.Expense
	}

	assert.Equal(t, wantIncome, rowIncome)
	assert.Equal(t, wantExpense, rowExpense)

	rowIncome, rowExpense = 0, 0
	for _, r := range byCategory.Rows {
		rowIncome += r.Income
		rowExpense += r.Expense
	}

	assert.Equal(t, wantIncome, rowIncome)
	assert.Equal(t, wantExpense, rowExpense)

	want := report.Totals{Income: wantIncome, Expense: wantExpense, Balance: wantIncome - wantExpense}
	assert.Equal(t, want, byPerson.GrandTotal)
	assert.Equal(t, want, byCategory.GrandTotal)
}

func TestService_ByPerson(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := report.NewMockRepository(ctrl)
	svc := report.NewService(repo)

	p := &person.Person{ID: uuid.New(), Name: "Marta", Age: 42}
	c := &category.Category{ID: uuid.New(), Description: "Casa", Purpose: category.PurposeBoth}

	repo.EXPECT().Snapshot(gomock.Any()).Return(&report.Snapshot{
		People:       []*person.Person{p},
		Categories:   []*category.Category{c},
		Transactions: []*transaction.Transaction{tx(p.ID, c.ID, transaction.KindIncome, 250_00)},
	}, nil)

	rep, err := svc.ByPerson(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "Marta", rep.Rows[0].Name)
	assert.Equal(t, int64(25000), rep.GrandTotal.Income)
}
