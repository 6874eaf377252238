package export_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/export"
	"github.com/mfreitas/contas/internal/person"
	"github.com/mfreitas/contas/internal/report"
	"github.com/mfreitas/contas/internal/transaction"
)

func TestService_WriteCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := report.NewMockRepository(ctrl)

	maria := &person.Person{ID: uuid.New(), Name: "Maria", Age: 41}
	tomas := &person.Person{ID: uuid.New(), Name: "Tomás", Age: 15}
	food := &category.Category{ID: uuid.New(), Description: "Alimentação", Purpose: category.PurposeExpense}
	salary := &category.Category{ID: uuid.New(), Description: "Vencimento", Purpose: category.PurposeIncome}

	snap := &report.Snapshot{
		People:     []*person.Person{maria, tomas},
		Categories: []*category.Category{food, salary},
		Transactions: []*transaction.Transaction{
			{ID: uuid.New(), Description: "Supermercado", Amount: 8540, Kind: transaction.KindExpense, PersonID: maria.ID, CategoryID: food.ID},
			{ID: uuid.New(), Description: "Salário Agosto", Amount: 125000, Kind: transaction.KindIncome, PersonID: maria.ID, CategoryID: salary.ID},
			{ID: uuid.New(), Description: "Lanche", Amount: 450, Kind: transaction.KindExpense, PersonID: tomas.ID, CategoryID: food.ID},
		},
	}
	repo.EXPECT().Snapshot(gomock.Any()).Return(snap, nil)

	var buf bytes.Buffer

	svc := export.NewService(repo)
	require.NoError(t, svc.WriteCSV(context.Background(), &buf))

	want := "Descrição;Montante;Pessoa;Categoria\n" +
		"Supermercado;-85,40;Maria;Alimentação\n" +
		"Salário Agosto;1250,00;Maria;Vencimento\n" +
		"Lanche;-4,50;Tomás;Alimentação\n"
	assert.Equal(t, want, buf.String())
}

func TestService_WriteCSV_EmptyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().Snapshot(gomock.Any()).Return(&report.Snapshot{}, nil)

	var buf bytes.Buffer

	svc := export.NewService(repo)
	require.NoError(t, svc.WriteCSV(context.Background(), &buf))

	assert.Equal(t, "Descrição;Montante;Pessoa;Categoria\n", buf.String())
}

func TestService_WriteCSV_UnknownPerson(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := report.NewMockRepository(ctrl)

	snap := &report.Snapshot{
		Transactions: []*transaction.Transaction{
			{ID: uuid.New(), Description: "Orfã", Amount: 100, Kind: transaction.KindExpense, PersonID: uuid.New(), CategoryID: uuid.New()},
		},
	}
	repo.EXPECT().Snapshot(gomock.Any()).Return(snap, nil)

	svc := export.NewService(repo)
	err := svc.WriteCSV(context.Background(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown person")
}
