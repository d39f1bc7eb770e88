package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

// BudgetGoal caps spending in a category. CurrentAmount grows with matching expenses.
type BudgetGoal struct {
	ID            uuid.UUID
	Owner         household.Member
	Name          string
	TargetAmount  int64 // Amount in cents
	CurrentAmount int64 // Amount in cents
	Category      string
	Deadline      *time.Time
}

// SavingsGoal tracks money put aside towards a target.
type SavingsGoal struct {
	ID            uuid.UUID
	Owner         household.Member
	Name          string
	TargetAmount  int64 // Amount in cents
	CurrentAmount int64 // Amount in cents
	Deadline      *time.Time
	Color         string
}

func (g *BudgetGoal) Progress() float64 {
	return progress(g.CurrentAmount, g.TargetAmount)
}

// Exceeded reports whether spending went past the target.
func (g *BudgetGoal) Exceeded() bool {
	return g.CurrentAmount > g.TargetAmount
}

func (g *SavingsGoal) Progress() float64 {
	return progress(g.CurrentAmount, g.TargetAmount)
}

func (g *SavingsGoal) Achieved() bool {
	return g.CurrentAmount >= g.TargetAmount
}

// progress is current/target as a percentage, capped at 100.
func progress(current, target int64) float64 {
	if target <= 0 {
		return 0
	}

	return min(float64(current)/float64(target)*100, 100)
}
