package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/goal"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/income"
)

func exp(amount int64, category string, d time.Time) *expense.Expense {
	return &expense.Expense{Amount: amount, Category: category, Date: d}
}

func scenario() []*expense.Expense {
	return []*expense.Expense{
		exp(5000, "Food", date(2024, 3, 1)),
		exp(3000, "Food", date(2024, 3, 2)),
		exp(2000, "Transport", date(2024, 3, 2)),
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(0), analytics.Total(nil, analytics.AllTime()))
	assert.Equal(t, int64(0), analytics.Total(nil, analytics.Today(date(2024, 3, 1))))
	assert.Equal(t, int64(10000), analytics.Total(scenario(), analytics.AllTime()))
	assert.Equal(t, int64(5000), analytics.Total(scenario(), analytics.Today(date(2024, 3, 2))))
	assert.Equal(t, int64(0), analytics.Total(scenario(), analytics.ThisMonth(date(2024, 4, 1))))
}

func TestTotal_UsesOwnerShare(t *testing.T) {
	partner := household.Member("amber")

	list := []*expense.Expense{
		exp(1000, "Food", date(2024, 3, 1)),
		{Amount: 3000, Category: "Food", Date: date(2024, 3, 1), SplitWith: &partner, SplitAmount: new(int64(1500))},
	}

	assert.Equal(t, int64(2500), analytics.Total(list, analytics.AllTime()))
	assert.Equal(t, int64(2500), analytics.Breakdown(list, analytics.AllTime()).GrandTotal)
}

func TestBreakdown_Scenario(t *testing.T) {
	got := analytics.Breakdown(scenario(), analytics.AllTime())

	require.Len(t, got.Categories, 2)
	assert.Equal(t, int64(10000), got.GrandTotal)

	food, transport := got.Categories[0], got.Categories[1]

	assert.Equal(t, "Food", food.Category)
	assert.Equal(t, int64(8000), food.Total)
	assert.Equal(t, 2, food.Count)
	assert.Equal(t, int64(4000), food.Average)
	assert.InDelta(t, 80.0, food.Percentage, 0.0001)

	assert.Equal(t, "Transport", transport.Category)
	assert.Equal(t, int64(2000), transport.Total)
	assert.Equal(t, 1, transport.Count)
	assert.Equal(t, int64(2000), transport.Average)
	assert.InDelta(t, 20.0, transport.Percentage, 0.0001)
}

func TestBreakdown_SumsToGrandTotal(t *testing.T) {
	list := []*expense.Expense{
		exp(333, "A", date(2024, 1, 1)),
		exp(333, "B", date(2024, 1, 2)),
		exp(334, "C", date(2024, 1, 3)),
		exp(1, "D", date(2024, 1, 4)),
	}

	got := analytics.Breakdown(list, analytics.AllTime())

	var sum int64

	var pct float64

	for _, c := range got.Categories {
		sum += c.Total
		pct += c.Percentage
	}

	assert.Equal(t, got.GrandTotal, sum)
	assert.InDelta(t, 100.0, pct, 0.0001)
}

func TestBreakdown_TiesOrderedByName(t *testing.T) {
	list := []*expense.Expense{
		exp(100, "Zoo", date(2024, 1, 1)),
		exp(100, "Art", date(2024, 1, 1)),
	}

	got := analytics.Breakdown(list, analytics.AllTime())
	assert.Equal(t, "Art", got.Categories[0].Category)
	assert.Equal(t, "Zoo", got.Categories[1].Category)
}

func TestBreakdown_ZeroGrandTotal(t *testing.T) {
	got := analytics.Breakdown([]*expense.Expense{exp(0, "Food", date(2024, 1, 1))}, analytics.AllTime())

	require.Len(t, got.Categories, 1)
	assert.Zero(t, got.Categories[0].Percentage)

	empty := analytics.Breakdown(nil, analytics.AllTime())
	assert.Empty(t, empty.Categories)
	assert.Zero(t, empty.GrandTotal)
}

func TestDailySeries(t *testing.T) {
	list := append(scenario(), exp(9999, "Food", date(2024, 4, 1)))

	got := analytics.DailySeries(list, 2024, time.March)

	require.Len(t, got.Days, 31)
	assert.Equal(t, date(2024, 3, 1), got.Days[0].Date)
	assert.Equal(t, int64(5000), got.Days[0].Total)
	assert.Equal(t, int64(5000), got.Days[1].Total)
	assert.Equal(t, int64(0), got.Days[30].Total)
	assert.Equal(t, int64(10000), got.Total)
	assert.Equal(t, int64(10000/31), got.DailyAverage)

	feb := analytics.DailySeries(nil, 2024, time.February)
	assert.Len(t, feb.Days, 29)
	assert.Zero(t, feb.DailyAverage)
}

func TestIncomeTotals(t *testing.T) {
	sources := []*income.Source{
		{Amount: 250000, Primary: true},
		{Amount: 30000},
	}

	assert.Equal(t, int64(280000), analytics.TotalIncome(sources))
	assert.Equal(t, int64(180000), analytics.NetIncome(280000, 100000))
	assert.Equal(t, int64(-5000), analytics.NetIncome(0, 5000))
}

func TestPeriodComparison(t *testing.T) {
	list := []*expense.Expense{
		exp(3100, "Food", date(2024, 3, 10)),
		exp(6200, "Food", date(2024, 4, 10)),
	}

	// April is compared with the whole of March.
	got := analytics.PeriodComparison(list, analytics.ThisMonth(date(2024, 4, 15)))

	assert.Equal(t, int64(6200), got.Current)
	assert.Equal(t, int64(3100), got.Previous)
	assert.Equal(t, int64(6200/30), got.CurrentDailyAverage)
	assert.Equal(t, int64(3100/31), got.PreviousDailyAverage)
	assert.InDelta(t, 100.0, got.Change, 0.0001)

	none := analytics.PeriodComparison(list, analytics.ThisMonth(date(2024, 2, 1)))
	assert.Zero(t, none.Change)
}

func TestGoalProgress(t *testing.T) {
	got := analytics.GoalProgress(
		[]*goal.BudgetGoal{{Name: "Food", CurrentAmount: 12000, TargetAmount: 10000}},
		[]*goal.SavingsGoal{{Name: "Holiday", CurrentAmount: 2500, TargetAmount: 10000}},
	)

	require.Len(t, got, 2)
	assert.Equal(t, analytics.GoalBudget, got[0].Kind)
	assert.True(t, got[0].Exceeded)
	assert.InDelta(t, 100.0, got[0].Percent, 0.0001)
	assert.Equal(t, analytics.GoalSavings, got[1].Kind)
	assert.False(t, got[1].Achieved)
	assert.InDelta(t, 25.0, got[1].Percent, 0.0001)
}
