package goal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/buxfer/internal/goal"
)

func TestSavingsGoal_Progress(t *testing.T) {
	tests := []struct {
		name         string
		current      int64
		target       int64
		wantProgress float64
		wantAchieved bool
	}{
		{"Empty", 0, 10000, 0, false},
		{"Half", 5000, 10000, 50, false},
		{"Reached", 10000, 10000, 100, true},
		{"CappedAt100", 15000, 10000, 100, true},
		{"ZeroTarget", 100, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goal.SavingsGoal{CurrentAmount: tt.current, TargetAmount: tt.target}
			assert.InDelta(t, tt.wantProgress, g.Progress(), 0.001)
			assert.Equal(t, tt.wantAchieved, g.Achieved())
		})
	}
}

func TestBudgetGoal_Exceeded(t *testing.T) {
	g := goal.BudgetGoal{CurrentAmount: 12000, TargetAmount: 10000}
	assert.True(t, g.Exceeded())
	assert.InDelta(t, 100, g.Progress(), 0.001)

	g.CurrentAmount = 2500
	assert.False(t, g.Exceeded())
	assert.InDelta(t, 25, g.Progress(), 0.001)
}
