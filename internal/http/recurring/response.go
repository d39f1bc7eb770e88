package recurring

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
)

type paymentResponse struct {
	ID             uuid.UUID           `json:"id"`
	Owner          household.Member    `json:"owner"`
	Description    string              `json:"description"`
	Amount         int64               `json:"amount"`
	Frequency      recurring.Frequency `json:"frequency"`
	NextDue        string              `json:"next_due"`
	Category       string              `json:"category,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	VariableAmount bool                `json:"variable_amount"`
	ReminderDays   int                 `json:"reminder_days"`
	CreatedAt      time.Time           `json:"created_at"`
}

type markPaidResponse struct {
	Payment   *paymentResponse `json:"payment,omitempty"`
	ExpenseID uuid.UUID        `json:"expense_id"`
}

func toResponse(p *recurring.Payment) paymentResponse {
	return paymentResponse{
		ID:             p.ID,
		Owner:          p.Owner,
		Description:    p.Description,
		Amount:         p.Amount,
		Frequency:      p.Frequency,
		NextDue:        respond.DateString(p.NextDue),
		Category:       p.Category,
		Notes:          p.Notes,
		VariableAmount: p.VariableAmount,
		ReminderDays:   p.ReminderDays,
		CreatedAt:      p.CreatedAt,
	}
}

func toResponseList(list []*recurring.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(list))
	for i, p := range list {
		resp[i] = toResponse(p)
	}

	return resp
}
