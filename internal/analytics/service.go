package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/goal"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/income"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=analytics
type ExpenseLister interface {
	List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error)
}

type RecurringLister interface {
	List(ctx context.Context, owner *household.Member) ([]*recurring.Payment, error)
}

type IncomeLister interface {
	List(ctx context.Context, owner *household.Member) ([]*income.Source, error)
}

type GoalLister interface {
	ListBudget(ctx context.Context, owner household.Member) ([]*goal.BudgetGoal, error)
	ListSavings(ctx context.Context, owner household.Member) ([]*goal.SavingsGoal, error)
}

type Service struct {
	expenses   ExpenseLister
	recurrings RecurringLister
	income     IncomeLister
	goals      GoalLister
}

func NewService(expenses ExpenseLister, recurrings RecurringLister, income IncomeLister, goals GoalLister) *Service {
	return &Service{expenses: expenses, recurrings: recurrings, income: income, goals: goals}
}

// Dashboard is the computed overview for one member.
type Dashboard struct {
	Member     household.Member
	AsOf       time.Time
	Today      int64
	Week       int64
	Month      int64
	Comparison Comparison
	Breakdown  CategoryBreakdown
	Series     MonthSeries
	Upcoming   []UpcomingPayment
	Income     income.Totals
	Net        int64
	Balance    []DayBalance
	Goals      []GoalStatus
}

type snapshot struct {
	expenses   []*expense.Expense
	recurrings []*recurring.Payment
	sources    []*income.Source
	budgets    []*goal.BudgetGoal
	savings    []*goal.SavingsGoal
}

// Dashboard loads the member's data concurrently and computes the overview for the month containing now.
// Expenses of the previous month are loaded as well so the month can be compared, and the range is
// widened to cover the whole current week when it crosses a month boundary.
func (s *Service) Dashboard(ctx context.Context, member household.Member, now time.Time) (*Dashboard, error) {
	month := ThisMonth(now)
	week := ThisWeek(now)

	from := month.Previous().Start
	if week.Start.Before(from) {
		from = week.Start
	}

	to := month.End
	if week.End.After(to) {
		to = week.End
	}

	snap, err := s.load(ctx, member, from, to)
	if err != nil {
		return nil, err
	}

	days := make([]time.Time, 0, month.Days())
	for d := month.Start; !d.After(month.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	totals := income.Summarize(snap.sources)
	monthTotal := Total(snap.expenses, month)

	return &Dashboard{
		Member:     member,
		AsOf:       dates.Day(now),
		Today:      Total(snap.expenses, Today(now)),
		Week:       Total(snap.expenses, week),
		Month:      monthTotal,
		Comparison: PeriodComparison(snap.expenses, month),
		Breakdown:  Breakdown(snap.expenses, month),
		Series:     DailySeries(snap.expenses, month.Start.Year(), month.Start.Month()),
		Upcoming:   Upcoming(snap.recurrings, now),
		Income:     totals,
		Net:        NetIncome(totals.Total, monthTotal),
		Balance:    RunningBalance(IncomeEvents(snap.sources, month.Start, month.End), snap.recurrings, snap.expenses, days, 0),
		Goals:      GoalProgress(snap.budgets, snap.savings),
	}, nil
}

func (s *Service) load(ctx context.Context, member household.Member, from, to time.Time) (*snapshot, error) {
	var snap snapshot

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.expenses.List(ctx, expense.ListFilter{Owner: &member, StartDate: &from, EndDate: &to})
		if err != nil {
			return fmt.Errorf("loading expenses: %w", err)
		}

		snap.expenses = list

		return nil
	})

	g.Go(func() error {
		list, err := s.recurrings.List(ctx, &member)
		if err != nil {
			return fmt.Errorf("loading recurring payments: %w", err)
		}

		snap.recurrings = list

		return nil
	})

	g.Go(func() error {
		list, err := s.income.List(ctx, &member)
		if err != nil {
			return fmt.Errorf("loading income: %w", err)
		}

		snap.sources = list

		return nil
	})

	g.Go(func() error {
		list, err := s.goals.ListBudget(ctx, member)
		if err != nil {
			return fmt.Errorf("loading budget goals: %w", err)
		}

		snap.budgets = list

		return nil
	})

	g.Go(func() error {
		list, err := s.goals.ListSavings(ctx, member)
		if err != nil {
			return fmt.Errorf("loading savings goals: %w", err)
		}

		snap.savings = list

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// Report is spending over a window, for one member or the whole household.
type Report struct {
	Window     Window
	Total      int64
	Breakdown  CategoryBreakdown
	Comparison *Comparison
}

// Report aggregates the expenses of owner (everyone when nil) inside w. Bounded windows are
// compared with the window of equal length before them.
func (s *Service) Report(ctx context.Context, owner *household.Member, w Window) (*Report, error) {
	filter := expense.ListFilter{Owner: owner}

	if !w.IsAllTime() {
		from := w.Previous().Start
		filter.StartDate, filter.EndDate = &from, &w.End
	}

	list, err := s.expenses.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}

	r := &Report{
		Window:    w,
		Total:     Total(list, w),
		Breakdown: Breakdown(list, w),
	}

	if !w.IsAllTime() {
		r.Comparison = new(PeriodComparison(list, w))
	}

	return r, nil
}

// Balance projects member's running balance over each day of w, starting from opening.
func (s *Service) Balance(ctx context.Context, member household.Member, w Window, opening int64) ([]DayBalance, error) {
	if w.IsAllTime() || w.Days() == 0 {
		return nil, errs.Invalid("window", "must be a bounded date range")
	}

	snap, err := s.load(ctx, member, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	days := make([]time.Time, 0, w.Days())
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return RunningBalance(IncomeEvents(snap.sources, w.Start, w.End), snap.recurrings, snap.expenses, days, opening), nil
}
