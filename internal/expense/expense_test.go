package expense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

func TestExpense_Share(t *testing.T) {
	partner := household.Member("amber")

	tests := []struct {
		name string
		e    expense.Expense
		want int64
	}{
		{"NotSplit", expense.Expense{Amount: 1000}, 1000},
		{"SplitWithShare", expense.Expense{Amount: 1000, SplitWith: &partner, SplitAmount: new(int64(300))}, 300},
		{"SplitWithoutShare", expense.Expense{Amount: 1000, SplitWith: &partner}, 1000},
		{"ShareIgnoredWhenNotSplit", expense.Expense{Amount: 1000, SplitAmount: new(int64(300))}, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.Share())
		})
	}
}
