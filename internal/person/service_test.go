package person_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfreitas/contas/internal/person"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    person.CreateParams
		setupMock func(m *person.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: person.CreateParams{Name: "Rita", Age: 34},
			setupMock: func(m *person.MockRepository) {
				m.EXPECT().
					CreatePerson(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *person.Person) error {
						p.ID = uuid.New()
						p.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:    "EmptyName",
			params:  person.CreateParams{Name: "   ", Age: 34},
			wantErr: person.ErrEmptyName,
		},
		{
			name:    "NegativeAge",
			params:  person.CreateParams{Name: "Rita", Age: -1},
			wantErr: person.ErrInvalidAge,
		},
		{
			name:    "AgeAboveRange",
			params:  person.CreateParams{Name: "Rita", Age: 151},
			wantErr: person.ErrInvalidAge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := person.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := person.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, person.ErrInvalidInput)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.params.Name, got.Name)
		})
	}
}

func TestService_Create_NameTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := person.NewMockRepository(ctrl)
	svc := person.NewService(repo)

	long := make([]byte, person.MaxNameLength+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.Create(context.Background(), person.CreateParams{Name: string(long), Age: 30})
	assert.ErrorIs(t, err, person.ErrNameTooLong)
}

func TestService_Delete_SweepsOrphans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := person.NewMockRepository(ctrl)
	dtx := person.NewMockDeleteTx(ctrl)
	svc := person.NewService(repo)

	id := uuid.New()
	keptCat := uuid.New()
	orphanCat := uuid.New()

	repo.EXPECT().BeginDelete(gomock.Any()).Return(dtx, nil)
	dtx.EXPECT().GetPerson(gomock.Any(), id).Return(&person.Person{ID: id, Name: "Rui", Age: 40}, nil)
	dtx.EXPECT().DeletePersonWithTransactions(gomock.Any(), id).Return(nil)
	dtx.EXPECT().ListCategoryIDs(gomock.Any()).Return([]uuid.UUID{keptCat, orphanCat}, nil)
	dtx.EXPECT().TransactionCountsByCategory(gomock.Any()).Return(map[uuid.UUID]int64{keptCat: 3}, nil)
	dtx.EXPECT().DeleteCategories(gomock.Any(), []uuid.UUID{orphanCat}).Return(nil)
	dtx.EXPECT().Commit().Return(nil)
	dtx.EXPECT().Rollback().Return(nil)

	removed, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestService_Delete_NoOrphans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := person.NewMockRepository(ctrl)
	dtx := person.NewMockDeleteTx(ctrl)
	svc := person.NewService(repo)

	id := uuid.New()
	cat := uuid.New()

	repo.EXPECT().BeginDelete(gomock.Any()).Return(dtx, nil)
	dtx.EXPECT().GetPerson(gomock.Any(), id).Return(&person.Person{ID: id}, nil)
	dtx.EXPECT().DeletePersonWithTransactions(gomock.Any(), id).Return(nil)
	dtx.EXPECT().ListCategoryIDs(gomock.Any()).Return([]uuid.UUID{cat}, nil)
	dtx.EXPECT().TransactionCountsByCategory(gomock.Any()).Return(map[uuid.UUID]int64{cat: 1}, nil)
	dtx.EXPECT().Commit().Return(nil)
	dtx.EXPECT().Rollback().Return(nil)

	removed, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := person.NewMockRepository(ctrl)
	dtx := person.NewMockDeleteTx(ctrl)
	svc := person.NewService(repo)

	id := uuid.New()

	repo.EXPECT().BeginDelete(gomock.Any()).Return(dtx, nil)
	dtx.EXPECT().GetPerson(gomock.Any(), id).Return(nil, person.ErrNotFound)
	dtx.EXPECT().Rollback().Return(nil)

	removed, err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, person.ErrNotFound)
	assert.Equal(t, 0, removed)
}

func TestService_Delete_SweepFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := person.NewMockRepository(ctrl)
	dtx := person.NewMockDeleteTx(ctrl)
	svc := person.NewService(repo)

	id := uuid.New()

	repo.EXPECT().BeginDelete(gomock.Any()).Return(dtx, nil)
	dtx.EXPECT().GetPerson(gomock.Any(), id).Return(&person.Person{ID: id}, nil)
	dtx.EXPECT().DeletePersonWithTransactions(gomock.Any(), id).Return(nil)
	dtx.EXPECT().ListCategoryIDs(gomock.Any()).Return(nil, errors.New("db error"))
	dtx.EXPECT().Rollback().Return(nil)

	_, err := svc.Delete(context.Background(), id)
	assert.Error(t, err)
}
