package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/person"
	"github.com/mfreitas/contas/internal/transaction"
)

func TestService_Create(t *testing.T) {
	personID := uuid.New()
	categoryID := uuid.New()

	base := transaction.CreateParams{
		Description: "Compras da semana",
		Amount:      5000,
		Kind:        transaction.KindExpense,
		PersonID:    personID,
		CategoryID:  categoryID,
	}

	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(repo *transaction.MockRepository, wtx *transaction.MockWriteTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: base,
			setupMock: func(repo *transaction.MockRepository, wtx *transaction.MockWriteTx) {
				repo.EXPECT().BeginWrite(gomock.Any()).Return(wtx, nil)
				wtx.EXPECT().GetPerson(gomock.Any(), personID).
					Return(&person.Person{ID: personID, Name: "Marta", Age: 42}, nil)
				wtx.EXPECT().GetCategory(gomock.Any(), categoryID).
					Return(&category.Category{ID: categoryID, Purpose: category.PurposeBoth}, nil)
				wtx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
				wtx.EXPECT().Commit().Return(nil)
				wtx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name: "MinorIncomeRejected",
			params: transaction.CreateParams{
				Description: "Mesada",
				Amount:      1000,
				Kind:        transaction.KindIncome,
				PersonID:    personID,
				CategoryID:  categoryID,
			},
			setupMock: func(repo *transaction.MockRepository, wtx *transaction.MockWriteTx) {
				repo.EXPECT().BeginWrite(gomock.Any()).Return(wtx, nil)
				wtx.EXPECT().GetPerson(gomock.Any(), personID).
					Return(&person.Person{ID: personID, Name: "Tiago", Age: 15}, nil)
				wtx.EXPECT().GetCategory(gomock.Any(), categoryID).
					Return(&category.Category{ID: categoryID, Purpose: category.PurposeBoth}, nil)
				wtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: transaction.ErrMinorIncome,
		},
		{
			name:   "PersonMissing",
			params: base,
			setupMock: func(repo *transaction.MockRepository, wtx *transaction.MockWriteTx) {
				repo.EXPECT().BeginWrite(gomock.Any()).Return(wtx, nil)
				wtx.EXPECT().GetPerson(gomock.Any(), personID).Return(nil, person.ErrNotFound)
				wtx.EXPECT().GetCategory(gomock.Any(), categoryID).
					Return(&category.Category{ID: categoryID, Purpose: category.PurposeBoth}, nil)
				wtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: person.ErrNotFound,
		},
		{
			name:   "CategoryMissing",
			params: base,
			setupMock: func(repo *transaction.MockRepository, wtx *transaction.MockWriteTx) {
				repo.EXPECT().BeginWrite(gomock.Any()).Return(wtx, nil)
				wtx.EXPECT().GetPerson(gomock.Any(), personID).
					Return(&person.Person{ID: personID, Name: "Marta", Age: 42}, nil)
				wtx.EXPECT().GetCategory(gomock.Any(), categoryID).Return(nil, category.ErrNotFound)
				wtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: category.ErrNotFound,
		},
		{
			name: "CategoryMismatchRejected",
			params: transaction.CreateParams{
				Description: "Ordenado",
				Amount:      120000,
				Kind:        transaction.KindIncome,
				PersonID:    personID,
				CategoryID:  categoryID,
			},
			setupMock: func(repo *transaction.MockRepository, wtx *transaction.MockWriteTx) {
				repo.EXPECT().BeginWrite(gomock.Any()).Return(wtx, nil)
				wtx.EXPECT().GetPerson(gomock.Any(), personID).
					Return(&person.Person{ID: personID, Name: "Marta", Age: 42}, nil)
				wtx.EXPECT().GetCategory(gomock.Any(), categoryID).
					Return(&category.Category{ID: categoryID, Purpose: category.PurposeExpense}, nil)
				wtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: transaction.ErrCategoryMismatch,
		},
		{
			name: "StorageErrorPassesThrough",
			params: transaction.CreateParams{
				Description: "Compras",
				Amount:      100,
				Kind:        transaction.KindExpense,
				PersonID:    personID,
				CategoryID:  categoryID,
			},
			setupMock: func(repo *transaction.MockRepository, wtx *transaction.MockWriteTx) {
				repo.EXPECT().BeginWrite(gomock.Any()).Return(wtx, nil)
				wtx.EXPECT().GetPerson(gomock.Any(), personID).Return(nil, errors.New("connection reset"))
				wtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: nil, // generic error, asserted below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			wtx := transaction.NewMockWriteTx(ctrl)
			tt.setupMock(repo, wtx)

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.name == "Success" {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.NotEmpty(t, got.ID)
				assert.Equal(t, tt.params.Description, got.Description)
				assert.Equal(t, tt.params.Amount, got.Amount)
				assert.Equal(t, tt.params.Kind, got.Kind)

				return
			}

			require.Error(t, err)
			assert.Nil(t, got)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// An admitted transaction is stored exactly as proposed; nothing is derived
// or rewritten between admission and persistence.
func TestService_Create_StoresAsGiven(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	wtx := transaction.NewMockWriteTx(ctrl)
	svc := transaction.NewService(repo)

	params := transaction.CreateParams{
		Description: "  Café com troco  ",
		Amount:      123,
		Kind:        transaction.KindExpense,
		PersonID:    uuid.New(),
		CategoryID:  uuid.New(),
	}

	repo.EXPECT().BeginWrite(gomock.Any()).Return(wtx, nil)
	wtx.EXPECT().GetPerson(gomock.Any(), params.PersonID).
		Return(&person.Person{ID: params.PersonID, Age: 30}, nil)
	wtx.EXPECT().GetCategory(gomock.Any(), params.CategoryID).
		Return(&category.Category{ID: params.CategoryID, Purpose: category.PurposeBoth}, nil)
	wtx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, params.Description, tx.Description)
			assert.Equal(t, params.Amount, tx.Amount)
			tx.ID = uuid.New()
			return nil
		})
	wtx.EXPECT().Commit().Return(nil)
	wtx.EXPECT().Rollback().Return(nil)

	_, err := svc.Create(context.Background(), params)
	require.NoError(t, err)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	wtx := transaction.NewMockWriteTx(ctrl)
	svc := transaction.NewService(repo)

	personID := uuid.New()
	categoryID := uuid.New()

	params := []transaction.CreateParams{
		{Description: "Renda", Amount: 75000, Kind: transaction.KindExpense, PersonID: personID, CategoryID: categoryID},
		{Description: "Luz", Amount: 4321, Kind: transaction.KindExpense, PersonID: personID, CategoryID: categoryID},
	}

	repo.EXPECT().BeginWrite(gomock.Any()).Return(wtx, nil)
	wtx.EXPECT().GetPerson(gomock.Any(), personID).
		Return(&person.Person{ID: personID, Age: 40}, nil).Times(2)
	wtx.EXPECT().GetCategory(gomock.Any(), categoryID).
		Return(&category.Category{ID: categoryID, Purpose: category.PurposeExpense}, nil).Times(2)
	wtx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		}).Times(2)
	wtx.EXPECT().Commit().Return(nil)
	wtx.EXPECT().Rollback().Return(nil)

	txs, err := svc.CreateBatch(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, int64(75000), txs[0].Amount)
}

func TestService_CreateBatch_RejectedRowAbortsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	wtx := transaction.NewMockWriteTx(ctrl)
	svc := transaction.NewService(repo)

	personID := uuid.New()
	categoryID := uuid.New()

	params := []transaction.CreateParams{
		{Description: "Renda", Amount: 75000, Kind: transaction.KindExpense, PersonID: personID, CategoryID: categoryID},
		{Description: "Mesada", Amount: 1000, Kind: transaction.KindIncome, PersonID: personID, CategoryID: categoryID},
	}

	repo.EXPECT().BeginWrite(gomock.Any()).Return(wtx, nil)
	wtx.EXPECT().GetPerson(gomock.Any(), personID).
		Return(&person.Person{ID: personID, Age: 15}, nil).Times(2)
	wtx.EXPECT().GetCategory(gomock.Any(), categoryID).
		Return(&category.Category{ID: categoryID, Purpose: category.PurposeBoth}, nil).Times(2)
	wtx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})
	// No Commit: the second row is rejected and the deferred Rollback runs.
	wtx.EXPECT().Rollback().Return(nil)

	txs, err := svc.CreateBatch(context.Background(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, transaction.ErrMinorIncome)
	assert.Contains(t, err.Error(), "row 2")
	assert.Nil(t, txs)
}

func TestService_CreateBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	txs, err := svc.CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
