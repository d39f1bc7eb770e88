package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

// Expense is a single spending record.
type Expense struct {
	ID          uuid.UUID
	Owner       household.Member
	Description string
	Amount      int64 // Amount in cents
	Category    string
	Date        time.Time
	SplitWith   *household.Member
	SplitAmount *int64 // Owner's share in cents when split
	CreatedAt   time.Time
}

// IsSplit reports whether the expense is shared with another member.
func (e *Expense) IsSplit() bool {
	return e.SplitWith != nil
}

// Share is the amount attributed to the owner: the recorded split amount for split expenses,
// otherwise the full amount.
func (e *Expense) Share() int64 {
	if e.IsSplit() && e.SplitAmount != nil {
		return *e.SplitAmount
	}

	return e.Amount
}
