package debt

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

// Kind separates debts owed by the household from a member's personal debts.
type Kind string

const (
	KindHousehold Kind = "household"
	KindPersonal  Kind = "personal"
)

const (
	// CategoryDebts is used for the expense recorded when a household debt is taken on.
	CategoryDebts = "Debts"
	// CategoryPayments is used for expenses recorded by debt payments.
	CategoryPayments = "Debt Payments"
)

// Debt is an amount owed, reduced by payments until nothing remains.
type Debt struct {
	ID              uuid.UUID
	Owner           household.Member
	Kind            Kind
	Description     string
	TotalAmount     int64 // Amount in cents
	RemainingAmount int64 // Amount in cents
	Shared          bool
	PaymentAmount   int64 // Instalment in cents, personal debts only
	Date            time.Time
	Payments        []Payment
	CreatedAt       time.Time
}

// Payment is one repayment of a debt.
type Payment struct {
	ID      uuid.UUID
	DebtID  uuid.UUID
	Amount  int64 // Amount in cents
	Date    time.Time
	AddedBy household.Member
}

func (d *Debt) Paid() bool {
	return d.RemainingAmount <= 0
}

// ApplyPayment pays d down and appends the payment. Household debts are settled in one payment;
// personal debts pay the smaller of the instalment and what remains.
func ApplyPayment(d *Debt, by household.Member, on time.Time) (Payment, error) {
	if d.Paid() {
		return Payment{}, errs.ErrAlreadyPaid
	}

	amount := d.RemainingAmount

	if d.Kind == KindPersonal {
		if d.PaymentAmount <= 0 {
			return Payment{}, errs.Invalid("payment_amount", "must be greater than zero")
		}

		amount = min(d.PaymentAmount, d.RemainingAmount)
	}

	p := Payment{
		DebtID:  d.ID,
		Amount:  amount,
		Date:    dates.Day(on),
		AddedBy: by,
	}

	d.RemainingAmount -= amount
	d.Payments = append(d.Payments, p)

	return p, nil
}
