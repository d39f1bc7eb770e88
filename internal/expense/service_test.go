package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

var (
	ray   = household.Member("ray")
	amber = household.Member("amber")
	today = time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
)

type mocks struct {
	repo  *expense.MockRepository
	cats  *expense.MockCategorizer
	goals *expense.MockGoalTracker
}

func newService(t *testing.T) (*expense.Service, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		repo:  expense.NewMockRepository(ctrl),
		cats:  expense.NewMockCategorizer(ctrl),
		goals: expense.NewMockGoalTracker(ctrl),
	}

	m.cats.EXPECT().Default().Return("Other").AnyTimes()

	hh := household.New([]string{"ray", "amber"}, nil)

	return expense.NewService(m.repo, m.cats, m.goals, hh), m
}

func expectCreate(m mocks) {
	m.repo.EXPECT().
		CreateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *expense.Expense) error {
			e.ID = uuid.New()
			e.CreatedAt = time.Now()
			return nil
		})
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    expense.CreateParams
		setupMock func(m mocks)
		check     func(t *testing.T, e *expense.Expense)
		wantErr   func(t *testing.T, err error)
	}

	tests := []testCase{
		{
			name: "ExplicitCategory",
			params: expense.CreateParams{
				Owner: ray, Description: "Weekly shop", Amount: 4550, Category: "Food", Date: today,
			},
			setupMock: func(m mocks) {
				m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
				expectCreate(m)
				m.goals.EXPECT().TrackExpense(gomock.Any(), ray, "Food", int64(4550)).Return(nil)
			},
			check: func(t *testing.T, e *expense.Expense) {
				assert.Equal(t, "Food", e.Category)
				assert.Nil(t, e.SplitAmount)
			},
		},
		{
			name: "AutoCategorizedWhenEmpty",
			params: expense.CreateParams{
				Owner: ray, Description: "Uber ride", Amount: 1200, Date: today,
			},
			setupMock: func(m mocks) {
				m.cats.EXPECT().Categorize(gomock.Any(), "Uber ride").Return("Transport", nil)
				m.cats.EXPECT().Exists(gomock.Any(), "Transport").Return(true, nil)
				expectCreate(m)
				m.goals.EXPECT().TrackExpense(gomock.Any(), ray, "Transport", int64(1200)).Return(nil)
			},
			check: func(t *testing.T, e *expense.Expense) {
				assert.Equal(t, "Transport", e.Category)
			},
		},
		{
			name: "AutoCategorizedWhenDefault",
			params: expense.CreateParams{
				Owner: ray, Description: "Tesco", Amount: 900, Category: "Other", Date: today,
			},
			setupMock: func(m mocks) {
				m.cats.EXPECT().Categorize(gomock.Any(), "Tesco").Return("Food", nil)
				m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
				expectCreate(m)
				m.goals.EXPECT().TrackExpense(gomock.Any(), ray, "Food", int64(900)).Return(nil)
			},
			check: func(t *testing.T, e *expense.Expense) {
				assert.Equal(t, "Food", e.Category)
			},
		},
		{
			name: "SplitDefaultsToHalf",
			params: expense.CreateParams{
				Owner: ray, Description: "Dinner", Amount: 3001, Category: "Food", Date: today, SplitWith: &amber,
			},
			setupMock: func(m mocks) {
				m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
				expectCreate(m)
				m.goals.EXPECT().TrackExpense(gomock.Any(), ray, "Food", int64(3001)).Return(nil)
			},
			check: func(t *testing.T, e *expense.Expense) {
				require.NotNil(t, e.SplitAmount)
				assert.Equal(t, int64(1500), *e.SplitAmount)
				assert.Equal(t, int64(1500), e.Share())
			},
		},
		{
			name: "GoalTrackingFailureIsNotFatal",
			params: expense.CreateParams{
				Owner: ray, Description: "Shop", Amount: 100, Category: "Food", Date: today,
			},
			setupMock: func(m mocks) {
				m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
				expectCreate(m)
				m.goals.EXPECT().TrackExpense(gomock.Any(), ray, "Food", int64(100)).Return(errors.New("boom"))
			},
			check: func(t *testing.T, e *expense.Expense) {
				assert.NotEqual(t, uuid.Nil, e.ID)
			},
		},
		{
			name:   "EmptyDescription",
			params: expense.CreateParams{Owner: ray, Description: "  ", Amount: 100, Date: today},
			wantErr: func(t *testing.T, err error) {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "description", v.Field)
			},
		},
		{
			name:   "ZeroAmount",
			params: expense.CreateParams{Owner: ray, Description: "x", Amount: 0, Category: "Food", Date: today},
			wantErr: func(t *testing.T, err error) {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "amount", v.Field)
			},
		},
		{
			name:   "MissingDate",
			params: expense.CreateParams{Owner: ray, Description: "x", Amount: 100, Category: "Food"},
			wantErr: func(t *testing.T, err error) {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "date", v.Field)
			},
		},
		{
			name:   "UnknownOwner",
			params: expense.CreateParams{Owner: "mallory", Description: "x", Amount: 100, Category: "Food", Date: today},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, errs.IsValidation(err))
			},
		},
		{
			name:   "UnknownCategory",
			params: expense.CreateParams{Owner: ray, Description: "x", Amount: 100, Category: "Pets", Date: today},
			setupMock: func(m mocks) {
				m.cats.EXPECT().Exists(gomock.Any(), "Pets").Return(false, nil)
			},
			wantErr: func(t *testing.T, err error) {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "category", v.Field)
			},
		},
		{
			name: "SplitWithSelf",
			params: expense.CreateParams{
				Owner: ray, Description: "x", Amount: 100, Category: "Food", Date: today, SplitWith: &ray,
			},
			setupMock: func(m mocks) {
				m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
			},
			wantErr: func(t *testing.T, err error) {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "split_with", v.Field)
			},
		},
		{
			name: "SplitAmountAboveAmount",
			params: expense.CreateParams{
				Owner: ray, Description: "x", Amount: 100, Category: "Food", Date: today,
				SplitWith: &amber, SplitAmount: new(int64(101)),
			},
			setupMock: func(m mocks) {
				m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
			},
			wantErr: func(t *testing.T, err error) {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "split_amount", v.Field)
			},
		},
		{
			name:   "StoreError",
			params: expense.CreateParams{Owner: ray, Description: "x", Amount: 100, Category: "Food", Date: today},
			setupMock: func(m mocks) {
				m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
				m.repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).
					Return(errs.Store("creating expense", errors.New("db error")))
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, errs.IsStore(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, today, got.Date)
			tt.check(t, got)
		})
	}
}

func TestService_CreateBatch_StopsAtFirstError(t *testing.T) {
	svc, m := newService(t)

	m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
	expectCreate(m)
	m.goals.EXPECT().TrackExpense(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	created, err := svc.CreateBatch(context.Background(), []expense.CreateParams{
		{Owner: ray, Description: "first", Amount: 100, Category: "Food", Date: today},
		{Owner: ray, Description: "", Amount: 100, Category: "Food", Date: today},
		{Owner: ray, Description: "third", Amount: 100, Category: "Food", Date: today},
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "creating expense 2")
	assert.Len(t, created, 1)
}

func TestService_Update(t *testing.T) {
	t.Run("ClearsShareWhenNoLongerSplit", func(t *testing.T) {
		svc, m := newService(t)

		e := &expense.Expense{
			ID: uuid.New(), Owner: ray, Description: "Dinner", Amount: 2000, Category: "Food",
			Date: today, SplitAmount: new(int64(1000)),
		}

		m.repo.EXPECT().GetExpense(gomock.Any(), e.ID).Return(&expense.Expense{ID: e.ID, Owner: ray}, nil)
		m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
		m.repo.EXPECT().UpdateExpense(gomock.Any(), e).Return(nil)

		require.NoError(t, svc.Update(context.Background(), ray, e))
		assert.Nil(t, e.SplitAmount)
	})

	t.Run("OwnerCannotChange", func(t *testing.T) {
		svc, m := newService(t)

		e := &expense.Expense{ID: uuid.New(), Owner: amber, Description: "Dinner", Amount: 2000, Category: "Food", Date: today}

		m.repo.EXPECT().GetExpense(gomock.Any(), e.ID).Return(&expense.Expense{ID: e.ID, Owner: ray}, nil)
		m.cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
		m.repo.EXPECT().UpdateExpense(gomock.Any(), e).Return(nil)

		require.NoError(t, svc.Update(context.Background(), ray, e))
		assert.Equal(t, ray, e.Owner)
	})

	t.Run("OtherMembersExpense", func(t *testing.T) {
		svc, m := newService(t)

		e := &expense.Expense{ID: uuid.New(), Owner: ray, Description: "x", Amount: 1, Category: "Food", Date: today}

		m.repo.EXPECT().GetExpense(gomock.Any(), e.ID).Return(&expense.Expense{ID: e.ID, Owner: amber}, nil)

		assert.ErrorIs(t, svc.Update(context.Background(), ray, e), errs.ErrNotFound)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, m := newService(t)

		e := &expense.Expense{ID: uuid.New(), Owner: ray, Description: "x", Amount: 1, Category: "Food", Date: today}

		m.repo.EXPECT().GetExpense(gomock.Any(), e.ID).Return(nil, errs.ErrNotFound)

		assert.ErrorIs(t, svc.Update(context.Background(), ray, e), errs.ErrNotFound)
	})
}

func TestService_GetListDelete(t *testing.T) {
	svc, m := newService(t)
	id := uuid.New()

	m.repo.EXPECT().GetExpense(gomock.Any(), id).Return(nil, errs.ErrNotFound)
	_, err := svc.Get(context.Background(), ray, id)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	filter := expense.ListFilter{Owner: &ray, Category: "Food"}
	m.repo.EXPECT().ListExpenses(gomock.Any(), filter).Return([]*expense.Expense{{ID: id}}, nil)
	list, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	m.repo.EXPECT().GetExpense(gomock.Any(), id).Return(&expense.Expense{ID: id, Owner: ray}, nil)
	m.repo.EXPECT().DeleteExpense(gomock.Any(), id).Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), ray, id))
}

func TestService_OtherMembersExpenseIsHidden(t *testing.T) {
	svc, m := newService(t)
	id := uuid.New()

	m.repo.EXPECT().GetExpense(gomock.Any(), id).Return(&expense.Expense{ID: id, Owner: amber}, nil).Times(2)

	_, err := svc.Get(context.Background(), ray, id)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), ray, id), errs.ErrNotFound)
}
