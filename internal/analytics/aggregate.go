package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/goal"
	"github.com/MrJamesThe3rd/buxfer/internal/income"
)

// Total sums the owner's share of every expense inside w.
func Total(expenses []*expense.Expense, w Window) int64 {
	var total int64

	for _, e := range expenses {
		if w.Contains(e.Date) {
			total += e.Share()
		}
	}

	return total
}

type CategoryTotal struct {
	Category   string
	Total      int64
	Count      int
	Average    int64
	Percentage float64
}

type CategoryBreakdown struct {
	Categories []CategoryTotal
	GrandTotal int64
}

// Breakdown groups expenses inside w by category, ordered by total descending then name.
// Percentages are of the grand total and are all 0 when it is 0.
func Breakdown(expenses []*expense.Expense, w Window) CategoryBreakdown {
	byName := make(map[string]*CategoryTotal)

	var out CategoryBreakdown

	for _, e := range expenses {
		if !w.Contains(e.Date) {
			continue
		}

		ct, ok := byName[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category}
			byName[e.Category] = ct
		}

		share := e.Share()
		ct.Total += share
		ct.Count++
		out.GrandTotal += share
	}

	out.Categories = make([]CategoryTotal, 0, len(byName))

	for _, ct := range byName {
		ct.Average = ct.Total / int64(ct.Count)

		if out.GrandTotal > 0 {
			ct.Percentage = float64(ct.Total) / float64(out.GrandTotal) * 100
		}

		out.Categories = append(out.Categories, *ct)
	}

	slices.SortFunc(out.Categories, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}

		return cmp.Compare(a.Category, b.Category)
	})

	return out
}

type DayTotal struct {
	Date  time.Time
	Total int64
}

type MonthSeries struct {
	Days         []DayTotal
	Total        int64
	DailyAverage int64
}

// DailySeries has one entry per calendar day of the month. DailyAverage divides by the number of
// days in the month, not by days with spending.
func DailySeries(expenses []*expense.Expense, year int, month time.Month) MonthSeries {
	n := dates.DaysIn(year, month)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	s := MonthSeries{Days: make([]DayTotal, n)}
	for i := range s.Days {
		s.Days[i].Date = first.AddDate(0, 0, i)
	}

	for _, e := range expenses {
		d := dates.Day(e.Date)
		if d.Year() != year || d.Month() != month {
			continue
		}

		s.Days[d.Day()-1].Total += e.Share()
		s.Total += e.Share()
	}

	s.DailyAverage = s.Total / int64(n)

	return s
}

// TotalIncome is the sum of primary wages and all other sources.
func TotalIncome(sources []*income.Source) int64 {
	return income.Summarize(sources).Total
}

func NetIncome(totalIncome, totalExpenses int64) int64 {
	return totalIncome - totalExpenses
}

type Comparison struct {
	Current              int64
	Previous             int64
	CurrentDailyAverage  int64
	PreviousDailyAverage int64
	// Change is the percentage change from Previous to Current, 0 when Previous is 0.
	Change float64
}

// PeriodComparison compares spending in w with the period before it (see Window.Previous).
func PeriodComparison(expenses []*expense.Expense, w Window) Comparison {
	prev := w.Previous()

	c := Comparison{
		Current:  Total(expenses, w),
		Previous: Total(expenses, prev),
	}

	if n := w.Days(); n > 0 {
		c.CurrentDailyAverage = c.Current / int64(n)
	}

	if n := prev.Days(); n > 0 {
		c.PreviousDailyAverage = c.Previous / int64(n)
	}

	if c.Previous > 0 {
		c.Change = float64(c.Current-c.Previous) / float64(c.Previous) * 100
	}

	return c
}

type GoalKind string

const (
	GoalBudget  GoalKind = "budget"
	GoalSavings GoalKind = "savings"
)

type GoalStatus struct {
	Name     string
	Kind     GoalKind
	Current  int64
	Target   int64
	Percent  float64
	Achieved bool
	Exceeded bool
}

// GoalProgress reports progress of budget goals followed by savings goals.
func GoalProgress(budgets []*goal.BudgetGoal, savings []*goal.SavingsGoal) []GoalStatus {
	out := make([]GoalStatus, 0, len(budgets)+len(savings))

	for _, g := range budgets {
		out = append(out, GoalStatus{
			Name:     g.Name,
			Kind:     GoalBudget,
			Current:  g.CurrentAmount,
			Target:   g.TargetAmount,
			Percent:  g.Progress(),
			Exceeded: g.Exceeded(),
		})
	}

	for _, g := range savings {
		out = append(out, GoalStatus{
			Name:     g.Name,
			Kind:     GoalSavings,
			Current:  g.CurrentAmount,
			Target:   g.TargetAmount,
			Percent:  g.Progress(),
			Achieved: g.Achieved(),
		})
	}

	return out
}
