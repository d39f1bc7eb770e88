// Package analytics computes totals, breakdowns and projections over snapshots of household data.
// Every function is pure; Service only gathers the snapshot.
package analytics

import (
	"time"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
)

// Window is an inclusive range of calendar dates. The zero Window is empty; AllTime matches everything.
type Window struct {
	Start time.Time
	End   time.Time
	all   bool
}

func Today(now time.Time) Window {
	d := dates.Day(now)
	return Window{Start: d, End: d}
}

// ThisWeek is the ISO week (Monday to Sunday) containing now.
func ThisWeek(now time.Time) Window {
	start := dates.StartOfWeek(now)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// ThisMonth spans the calendar month containing now.
func ThisMonth(now time.Time) Window {
	start := dates.StartOfMonth(now)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}

// Range spans start to end inclusive. A reversed range is swapped.
func Range(start, end time.Time) Window {
	start, end = dates.Day(start), dates.Day(end)
	if end.Before(start) {
		start, end = end, start
	}

	return Window{Start: start, End: end}
}

func AllTime() Window {
	return Window{all: true}
}

func (w Window) IsAllTime() bool {
	return w.all
}

func (w Window) Contains(d time.Time) bool {
	if w.all {
		return true
	}

	if w.Start.IsZero() && w.End.IsZero() {
		return false
	}

	d = dates.Day(d)

	return !d.Before(w.Start) && !d.After(w.End)
}

// Days is the number of calendar days covered, 0 for AllTime.
func (w Window) Days() int {
	if w.all || w.End.Before(w.Start) || (w.Start.IsZero() && w.End.IsZero()) {
		return 0
	}

	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Previous is the period just before w. Windows made of whole calendar months step back by the same
// number of months (March is compared with February); any other window steps back by its own length.
func (w Window) Previous() Window {
	n := w.Days()
	if n == 0 {
		return Window{}
	}

	end := w.Start.AddDate(0, 0, -1)

	if months := w.wholeMonths(); months > 0 {
		return Window{Start: dates.AddMonths(w.Start, -months), End: end}
	}

	return Window{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

// wholeMonths is the number of calendar months w spans when it starts on a 1st and ends on a month's
// last day, else 0.
func (w Window) wholeMonths() int {
	if w.Start.Day() != 1 || w.End.AddDate(0, 0, 1).Day() != 1 {
		return 0
	}

	return (w.End.Year()-w.Start.Year())*12 + int(w.End.Month()-w.Start.Month()) + 1
}

// ParseWindow resolves a named window relative to now: today, week, month or all.
// An empty name means month.
func ParseWindow(name string, now time.Time) (Window, error) {
	switch name {
	case "today":
		return Today(now), nil
	case "week":
		return ThisWeek(now), nil
	case "", "month":
		return ThisMonth(now), nil
	case "all":
		return AllTime(), nil
	default:
		return Window{}, errs.Invalid("window", "must be one of today, week, month, all")
	}
}
