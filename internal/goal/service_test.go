package goal_test

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
	"github.com/MrJamesThe3rd/buxfer/internal/goal"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

const ray = household.Member("ray")

func TestService_CreateBudget(t *testing.T) {
	type testCase struct {
		name      string
		params    goal.CreateBudgetParams
		setupMock func(repo *goal.MockRepository, cats *goal.MockCategoryChecker)
		wantErr   bool
		wantField string
	}

	deadline := time.Date(2024, 12, 31, 15, 0, 0, 0, time.UTC)

	tests := []testCase{
		{
			name:   "Success",
			params: goal.CreateBudgetParams{Owner: ray, Name: "Groceries", TargetAmount: 40000, Category: "Food", Deadline: &deadline},
			setupMock: func(repo *goal.MockRepository, cats *goal.MockCategoryChecker) {
				cats.EXPECT().Exists(gomock.Any(), "Food").Return(true, nil)
				repo.EXPECT().
					CreateBudgetGoal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, g *goal.BudgetGoal) error {
						assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *g.Deadline)
						assert.Zero(t, g.CurrentAmount)
						g.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:      "ZeroTarget",
			params:    goal.CreateBudgetParams{Owner: ray, Name: "Groceries", TargetAmount: 0, Category: "Food"},
			wantErr:   true,
			wantField: "target_amount",
		},
		{
			name:      "EmptyName",
			params:    goal.CreateBudgetParams{Owner: ray, Name: " ", TargetAmount: 100, Category: "Food"},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:   "UnknownCategory",
			params: goal.CreateBudgetParams{Owner: ray, Name: "Pets", TargetAmount: 100, Category: "Pets"},
			setupMock: func(repo *goal.MockRepository, cats *goal.MockCategoryChecker) {
				cats.EXPECT().Exists(gomock.Any(), "Pets").Return(false, nil)
			},
			wantErr:   true,
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := goal.NewMockRepository(ctrl)
			cats := goal.NewMockCategoryChecker(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, cats)
			}

			got, err := goal.NewService(repo, cats).CreateBudget(context.Background(), tt.params)
			if tt.wantErr {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, tt.wantField, v.Field)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_TrackExpense(t *testing.T) {
	t.Run("IncrementsMatchingGoals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().AddToBudgetGoals(gomock.Any(), ray, "Food", int64(1250)).Return(int64(1), nil)

		assert.NoError(t, goal.NewService(repo, nil).TrackExpense(context.Background(), ray, "Food", 1250))
	})

	t.Run("IgnoresNonPositive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)

		assert.NoError(t, goal.NewService(repo, nil).TrackExpense(context.Background(), ray, "Food", 0))
	})

	t.Run("WrapsStoreError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().AddToBudgetGoals(gomock.Any(), ray, "Food", int64(5)).
			Return(int64(0), errs.Store("adding to budget goals", errors.New("db error")))

		err := goal.NewService(repo, nil).TrackExpense(context.Background(), ray, "Food", 5)
		assert.True(t, errs.IsStore(err))
	})
}

func TestService_UpdateBudgetCurrent(t *testing.T) {
	id := uuid.New()

	t.Run("Negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := goal.NewService(goal.NewMockRepository(ctrl), nil).UpdateBudgetCurrent(context.Background(), ray, id, -1)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().GetBudgetGoal(gomock.Any(), id).Return(nil, errs.ErrNotFound)

		_, err := goal.NewService(repo, nil).UpdateBudgetCurrent(context.Background(), ray, id, 10)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("OtherMembersGoal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().GetBudgetGoal(gomock.Any(), id).Return(&goal.BudgetGoal{ID: id, Owner: "amber", TargetAmount: 100}, nil).Times(2)

		svc := goal.NewService(repo, nil)

		_, err := svc.UpdateBudgetCurrent(context.Background(), ray, id, 10)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteBudget(context.Background(), ray, id), errs.ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().GetBudgetGoal(gomock.Any(), id).Return(&goal.BudgetGoal{ID: id, Owner: ray, TargetAmount: 100}, nil)
		repo.EXPECT().UpdateBudgetGoal(gomock.Any(), &goal.BudgetGoal{ID: id, Owner: ray, TargetAmount: 100, CurrentAmount: 70}).Return(nil)

		got, err := goal.NewService(repo, nil).UpdateBudgetCurrent(context.Background(), ray, id, 70)
		require.NoError(t, err)
		assert.Equal(t, int64(70), got.CurrentAmount)
	})
}

func TestService_Savings(t *testing.T) {
	id := uuid.New()

	t.Run("CreateRejectsNegativeCurrent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := goal.NewService(goal.NewMockRepository(ctrl), nil).CreateSavings(context.Background(), goal.CreateSavingsParams{
			Owner: ray, Name: "Holiday", TargetAmount: 100000, CurrentAmount: -5,
		})
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("UpdateReachesTarget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().GetSavingsGoal(gomock.Any(), id).Return(&goal.SavingsGoal{ID: id, Owner: ray, TargetAmount: 100000, CurrentAmount: 90000}, nil)
		repo.EXPECT().UpdateSavingsGoal(gomock.Any(), gomock.Any()).Return(nil)

		got, err := goal.NewService(repo, nil).UpdateSavingsCurrent(context.Background(), ray, id, 100000)
		require.NoError(t, err)
		assert.True(t, got.Achieved())
	})

	t.Run("OtherMembersGoal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().GetSavingsGoal(gomock.Any(), id).Return(&goal.SavingsGoal{ID: id, Owner: "amber", TargetAmount: 100000}, nil).Times(2)

		svc := goal.NewService(repo, nil)

		_, err := svc.UpdateSavingsCurrent(context.Background(), ray, id, 100)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteSavings(context.Background(), ray, id), errs.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().ListSavingsGoals(gomock.Any(), ray).Return([]*goal.SavingsGoal{{ID: id}}, nil)

		list, err := goal.NewService(repo, nil).ListSavings(context.Background(), ray)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
