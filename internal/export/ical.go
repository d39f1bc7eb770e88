package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
)

const prodID = "-//Buxfer//EN"

// WriteCalendar writes an iCalendar file with one event per recurring payment, repeating at the
// payment's frequency, and one per todo that has a due date. Long lines are folded at 75 octets.
func WriteCalendar(w io.Writer, payments []*recurring.Payment, todos []*todo.Todo, now time.Time) error {
	cal := ics.NewCalendar()
	cal.SetProductId(prodID)

	stamp := now.UTC()

	for _, p := range payments {
		e := cal.AddEvent(p.ID.String() + "@buxfer")
		e.SetDtStampTime(stamp)
		e.SetSummary("Recurring: " + p.Description)
		e.SetAllDayStartAt(p.NextDue)
		e.AddRrule("FREQ=" + strings.ToUpper(string(p.Frequency)))
	}

	for _, t := range todos {
		if t.Due == nil {
			continue
		}

		e := cal.AddEvent(t.ID.String() + "@buxfer")
		e.SetDtStampTime(stamp)
		e.SetSummary("Task: " + t.Text)
		e.SetAllDayStartAt(*t.Due)
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}

	return nil
}
