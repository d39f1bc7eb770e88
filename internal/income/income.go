package income

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

// Source is a stream of income. Each member has at most one primary source, their wage.
type Source struct {
	ID      uuid.UUID
	Owner   household.Member
	Name    string
	Amount  int64 // Amount in cents
	PayDate *time.Time
	Primary bool
}

// Totals splits income into primary wages and everything else.
type Totals struct {
	Primary int64
	Other   int64
	Total   int64
}

// Summarize adds up sources.
func Summarize(sources []*Source) Totals {
	var t Totals

	for _, s := range sources {
		if s.Primary {
			t.Primary += s.Amount
		} else {
			t.Other += s.Amount
		}
	}

	t.Total = t.Primary + t.Other

	return t
}
