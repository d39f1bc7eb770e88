package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/goal"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/income"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
)

type dashboardMocks struct {
	expenses   *analytics.MockExpenseLister
	recurrings *analytics.MockRecurringLister
	income     *analytics.MockIncomeLister
	goals      *analytics.MockGoalLister
}

func newDashboard(t *testing.T) (*analytics.Service, dashboardMocks) {
	ctrl := gomock.NewController(t)

	m := dashboardMocks{
		expenses:   analytics.NewMockExpenseLister(ctrl),
		recurrings: analytics.NewMockRecurringLister(ctrl),
		income:     analytics.NewMockIncomeLister(ctrl),
		goals:      analytics.NewMockGoalLister(ctrl),
	}

	return analytics.NewService(m.expenses, m.recurrings, m.income, m.goals), m
}

func TestService_Dashboard(t *testing.T) {
	svc, m := newDashboard(t)

	ray := household.Member("ray")
	now := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	m.expenses.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f expense.ListFilter) ([]*expense.Expense, error) {
			assert.Equal(t, ray, *f.Owner)
			assert.Equal(t, date(2024, 2, 1), *f.StartDate)
			assert.Equal(t, date(2024, 3, 31), *f.EndDate)

			return []*expense.Expense{
				exp(1000, "Food", date(2024, 3, 13)),
				exp(2000, "Transport", date(2024, 3, 11)),
				exp(4000, "Food", date(2024, 3, 1)),
				exp(3500, "Food", date(2024, 2, 10)),
			}, nil
		})
	m.recurrings.EXPECT().List(gomock.Any(), &ray).Return([]*recurring.Payment{
		{Description: "Rent", Amount: 50000, Frequency: recurring.Monthly, NextDue: date(2024, 3, 28)},
	}, nil)
	m.income.EXPECT().List(gomock.Any(), &ray).Return([]*income.Source{
		{Name: "Wage", Amount: 200000, Primary: true, PayDate: new(date(2024, 1, 25))},
	}, nil)
	m.goals.EXPECT().ListBudget(gomock.Any(), ray).Return([]*goal.BudgetGoal{{Name: "Food", TargetAmount: 10000, CurrentAmount: 5000}}, nil)
	m.goals.EXPECT().ListSavings(gomock.Any(), ray).Return(nil, nil)

	got, err := svc.Dashboard(context.Background(), ray, now)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), got.Today)
	assert.Equal(t, int64(3000), got.Week)
	assert.Equal(t, int64(7000), got.Month)
	assert.Equal(t, int64(3500), got.Comparison.Previous)
	assert.Equal(t, "Food", got.Breakdown.Categories[0].Category)
	assert.Len(t, got.Series.Days, 31)
	require.Len(t, got.Upcoming, 1)
	assert.False(t, got.Upcoming[0].Overdue)
	assert.Equal(t, int64(200000), got.Income.Total)
	assert.Equal(t, int64(193000), got.Net)
	require.Len(t, got.Balance, 31)
	assert.Equal(t, int64(200000-7000-50000), got.Balance[30].Balance)
	require.Len(t, got.Goals, 1)
	assert.InDelta(t, 50.0, got.Goals[0].Percent, 0.0001)
}

func TestService_Dashboard_WeekCrossesMonthEnd(t *testing.T) {
	svc, m := newDashboard(t)

	ray := household.Member("ray")
	// Tuesday; the week runs Apr 29 to May 5.
	now := time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC)

	m.expenses.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f expense.ListFilter) ([]*expense.Expense, error) {
			assert.Equal(t, date(2024, 3, 1), *f.StartDate)
			assert.Equal(t, date(2024, 5, 5), *f.EndDate)

			return []*expense.Expense{
				exp(1200, "Food", date(2024, 4, 29)),
				exp(800, "Food", date(2024, 5, 2)),
			}, nil
		})
	m.recurrings.EXPECT().List(gomock.Any(), &ray).Return(nil, nil)
	m.income.EXPECT().List(gomock.Any(), &ray).Return(nil, nil)
	m.goals.EXPECT().ListBudget(gomock.Any(), ray).Return(nil, nil)
	m.goals.EXPECT().ListSavings(gomock.Any(), ray).Return(nil, nil)

	got, err := svc.Dashboard(context.Background(), ray, now)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), got.Week)
	assert.Equal(t, int64(1200), got.Month)
}

func TestService_Dashboard_LoadError(t *testing.T) {
	svc, m := newDashboard(t)

	ray := household.Member("ray")

	m.expenses.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	m.recurrings.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.income.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.goals.EXPECT().ListBudget(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.goals.EXPECT().ListSavings(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := svc.Dashboard(context.Background(), ray, time.Now())
	require.Error(t, err)
	assert.ErrorContains(t, err, "loading expenses")
}

func TestService_Report(t *testing.T) {
	svc, m := newDashboard(t)
	w := analytics.Range(date(2024, 3, 1), date(2024, 3, 10))

	m.expenses.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f expense.ListFilter) ([]*expense.Expense, error) {
			assert.Nil(t, f.Owner)
			assert.Equal(t, date(2024, 2, 20), *f.StartDate)
			assert.Equal(t, date(2024, 3, 10), *f.EndDate)

			return []*expense.Expense{
				exp(1500, "Food", date(2024, 3, 2)),
				exp(500, "Transport", date(2024, 3, 9)),
				exp(1000, "Food", date(2024, 2, 25)),
			}, nil
		})

	got, err := svc.Report(context.Background(), nil, w)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), got.Total)
	assert.Equal(t, int64(2000), got.Breakdown.GrandTotal)
	require.NotNil(t, got.Comparison)
	assert.Equal(t, int64(1000), got.Comparison.Previous)
	assert.InDelta(t, 100.0, got.Comparison.Change, 0.001)
}

func TestService_Report_AllTime(t *testing.T) {
	svc, m := newDashboard(t)
	ray := household.Member("ray")

	m.expenses.EXPECT().List(gomock.Any(), expense.ListFilter{Owner: &ray}).Return([]*expense.Expense{
		exp(1500, "Food", date(2020, 3, 2)),
		exp(500, "Food", date(2024, 3, 9)),
	}, nil)

	got, err := svc.Report(context.Background(), &ray, analytics.AllTime())
	require.NoError(t, err)

	assert.Equal(t, int64(2000), got.Total)
	assert.Nil(t, got.Comparison)
}

func TestService_Balance(t *testing.T) {
	svc, m := newDashboard(t)
	ray := household.Member("ray")
	w := analytics.Range(date(2024, 3, 1), date(2024, 3, 3))

	m.expenses.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*expense.Expense{
		exp(1000, "Food", date(2024, 3, 2)),
	}, nil)
	m.recurrings.EXPECT().List(gomock.Any(), &ray).Return([]*recurring.Payment{
		{Amount: 500, Frequency: recurring.Weekly, NextDue: date(2024, 3, 3)},
	}, nil)
	m.income.EXPECT().List(gomock.Any(), &ray).Return([]*income.Source{
		{Amount: 10000, PayDate: new(date(2024, 2, 1))},
	}, nil)
	m.goals.EXPECT().ListBudget(gomock.Any(), ray).Return(nil, nil)
	m.goals.EXPECT().ListSavings(gomock.Any(), ray).Return(nil, nil)

	got, err := svc.Balance(context.Background(), ray, w, 100)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, int64(10100), got[0].Balance)
	assert.Equal(t, int64(9100), got[1].Balance)
	assert.Equal(t, int64(8600), got[2].Balance)
}

func TestService_Balance_Unbounded(t *testing.T) {
	svc, _ := newDashboard(t)

	_, err := svc.Balance(context.Background(), "ray", analytics.AllTime(), 0)
	assert.Error(t, err)
}
