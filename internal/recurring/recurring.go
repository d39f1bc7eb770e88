package recurring

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

// Frequency is how often a recurring payment falls due.
type Frequency string

const (
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case Weekly, Monthly, Yearly:
		return true
	}

	return false
}

// DefaultCategory is used for expenses recorded from a payment without its own category.
const DefaultCategory = "Bills"

// Payment is a bill or subscription due at a fixed interval.
type Payment struct {
	ID             uuid.UUID
	Owner          household.Member
	Description    string
	Amount         int64 // Amount in cents
	Frequency      Frequency
	NextDue        time.Time
	Category       string
	Notes          string
	VariableAmount bool
	ReminderDays   int
	CreatedAt      time.Time
}

// Advance returns the next due date after due. Monthly and yearly steps keep the day of month,
// clamped to the last day of the target month, so Jan 31 becomes Feb 29 (or 28).
func Advance(due time.Time, f Frequency) (time.Time, error) {
	if due.IsZero() {
		return time.Time{}, errs.ErrInvalidDate
	}

	due = dates.Day(due)

	switch f {
	case Weekly:
		return due.AddDate(0, 0, 7), nil
	case Monthly:
		return dates.AddMonths(due, 1), nil
	case Yearly:
		return dates.AddMonths(due, 12), nil
	}

	return time.Time{}, errs.Invalid("frequency", fmt.Sprintf("unknown frequency %q", f))
}

// ParseDue reads a stored YYYY-MM-DD due date.
func ParseDue(s string) (time.Time, error) {
	return dates.Parse(s)
}

// Occurrences lists the due dates of p that fall within [from, to], starting at NextDue.
// Dates before NextDue are considered paid and never returned.
func Occurrences(p *Payment, from, to time.Time) []time.Time {
	if p.NextDue.IsZero() {
		return nil
	}

	from, to = dates.Day(from), dates.Day(to)

	var out []time.Time

	d := dates.Day(p.NextDue)
	for !d.After(to) {
		if !d.Before(from) {
			out = append(out, d)
		}

		next, err := Advance(d, p.Frequency)
		if err != nil {
			break
		}

		d = next
	}

	return out
}
