package analytics

import (
	"slices"
	"time"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/income"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
)

// IncomeEvent is money arriving on a given day.
type IncomeEvent struct {
	Date   time.Time
	Name   string
	Amount int64
}

// IncomeEvents projects each source with a pay date onto the same day of every month in [from, to],
// clamped to the month's last day. Occurrences before the first pay date are skipped.
func IncomeEvents(sources []*income.Source, from, to time.Time) []IncomeEvent {
	from, to = dates.Day(from), dates.Day(to)

	var out []IncomeEvent

	for _, s := range sources {
		if s.PayDate == nil || s.PayDate.IsZero() {
			continue
		}

		first := dates.Day(*s.PayDate)

		for m := dates.StartOfMonth(from); !m.After(to); m = m.AddDate(0, 1, 0) {
			day := min(first.Day(), dates.DaysIn(m.Year(), m.Month()))
			d := time.Date(m.Year(), m.Month(), day, 0, 0, 0, 0, time.UTC)

			if d.Before(from) || d.After(to) || d.Before(first) {
				continue
			}

			out = append(out, IncomeEvent{Date: d, Name: s.Name, Amount: s.Amount})
		}
	}

	slices.SortStableFunc(out, func(a, b IncomeEvent) int { return a.Date.Compare(b.Date) })

	return out
}

type DayBalance struct {
	Date     time.Time
	Income   int64
	Outgoing int64
	Balance  int64
}

// RunningBalance walks days in chronological order, adding income and subtracting recurring
// payments due and expenses on each day, starting from opening.
func RunningBalance(
	events []IncomeEvent,
	recurrings []*recurring.Payment,
	expenses []*expense.Expense,
	days []time.Time,
	opening int64,
) []DayBalance {
	if len(days) == 0 {
		return nil
	}

	sorted := make([]time.Time, len(days))
	for i, d := range days {
		sorted[i] = dates.Day(d)
	}

	slices.SortFunc(sorted, func(a, b time.Time) int { return a.Compare(b) })
	sorted = slices.Compact(sorted)

	first, last := sorted[0], sorted[len(sorted)-1]

	incoming := make(map[time.Time]int64)
	for _, ev := range events {
		incoming[dates.Day(ev.Date)] += ev.Amount
	}

	outgoing := make(map[time.Time]int64)

	for _, p := range recurrings {
		for _, d := range recurring.Occurrences(p, first, last) {
			outgoing[d] += p.Amount
		}
	}

	for _, e := range expenses {
		outgoing[dates.Day(e.Date)] += e.Share()
	}

	out := make([]DayBalance, len(sorted))
	balance := opening

	for i, d := range sorted {
		balance += incoming[d] - outgoing[d]
		out[i] = DayBalance{Date: d, Income: incoming[d], Outgoing: outgoing[d], Balance: balance}
	}

	return out
}

type UpcomingPayment struct {
	Payment   *recurring.Payment
	DaysUntil int
	Overdue   bool
}

// Upcoming orders payments by next due date. A payment due on or before asOf is overdue.
func Upcoming(recurrings []*recurring.Payment, asOf time.Time) []UpcomingPayment {
	asOf = dates.Day(asOf)

	out := make([]UpcomingPayment, 0, len(recurrings))

	for _, p := range recurrings {
		due := dates.Day(p.NextDue)

		out = append(out, UpcomingPayment{
			Payment:   p,
			DaysUntil: int(due.Sub(asOf).Hours() / 24),
			Overdue:   !due.After(asOf),
		})
	}

	slices.SortStableFunc(out, func(a, b UpcomingPayment) int {
		return a.Payment.NextDue.Compare(b.Payment.NextDue)
	})

	return out
}
