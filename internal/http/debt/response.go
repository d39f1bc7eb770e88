package debt

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/debt"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
)

type paymentResponse struct {
	ID      uuid.UUID `json:"id"`
	Amount  int64     `json:"amount"`
	Date    string    `json:"date"`
	AddedBy string    `json:"added_by"`
}

type debtResponse struct {
	ID              uuid.UUID         `json:"id"`
	Owner           string            `json:"owner"`
	Kind            debt.Kind         `json:"kind"`
	Description     string            `json:"description"`
	TotalAmount     int64             `json:"total_amount"`
	RemainingAmount int64             `json:"remaining_amount"`
	Shared          bool              `json:"shared"`
	PaymentAmount   int64             `json:"payment_amount,omitempty"`
	Date            string            `json:"date"`
	Paid            bool              `json:"paid"`
	Payments        []paymentResponse `json:"payments"`
	CreatedAt       time.Time         `json:"created_at"`
}

// expenseRef points at the expense a debt operation recorded.
type expenseRef struct {
	ID       uuid.UUID `json:"id"`
	Amount   int64     `json:"amount"`
	Category string    `json:"category"`
}

type createResponse struct {
	Debt    debtResponse `json:"debt"`
	Expense *expenseRef  `json:"expense,omitempty"`
}

type payResponse struct {
	Debt    debtResponse    `json:"debt"`
	Payment paymentResponse `json:"payment"`
	Expense *expenseRef     `json:"expense,omitempty"`
}

func toResponse(d *debt.Debt) debtResponse {
	payments := make([]paymentResponse, len(d.Payments))
	for i, p := range d.Payments {
		payments[i] = toPaymentResponse(p)
	}

	return debtResponse{
		ID:              d.ID,
		Owner:           string(d.Owner),
		Kind:            d.Kind,
		Description:     d.Description,
		TotalAmount:     d.TotalAmount,
		RemainingAmount: d.RemainingAmount,
		Shared:          d.Shared,
		PaymentAmount:   d.PaymentAmount,
		Date:            respond.DateString(d.Date),
		Paid:            d.Paid(),
		Payments:        payments,
		CreatedAt:       d.CreatedAt,
	}
}

func toPaymentResponse(p debt.Payment) paymentResponse {
	return paymentResponse{
		ID:      p.ID,
		Amount:  p.Amount,
		Date:    respond.DateString(p.Date),
		AddedBy: string(p.AddedBy),
	}
}

func toExpenseRef(e *expense.Expense) *expenseRef {
	if e == nil {
		return nil
	}

	return &expenseRef{ID: e.ID, Amount: e.Amount, Category: e.Category}
}
