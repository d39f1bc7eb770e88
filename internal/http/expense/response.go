package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
)

type expenseResponse struct {
	ID          uuid.UUID         `json:"id"`
	Owner       household.Member  `json:"owner"`
	Description string            `json:"description"`
	Amount      int64             `json:"amount"`
	Share       int64             `json:"share"`
	Category    string            `json:"category"`
	Date        string            `json:"date"`
	SplitWith   *household.Member `json:"split_with,omitempty"`
	SplitAmount *int64            `json:"split_amount,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Owner:       e.Owner,
		Description: e.Description,
		Amount:      e.Amount,
		Share:       e.Share(),
		Category:    e.Category,
		Date:        respond.DateString(e.Date),
		SplitWith:   e.SplitWith,
		SplitAmount: e.SplitAmount,
		CreatedAt:   e.CreatedAt,
	}
}

func toResponseList(list []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(list))
	for i, e := range list {
		resp[i] = toResponse(e)
	}

	return resp
}
