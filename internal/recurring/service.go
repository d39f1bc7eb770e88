package recurring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurring
type Repository interface {
	CreatePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	UpdatePayment(ctx context.Context, p *Payment) error
	DeletePayment(ctx context.Context, id uuid.UUID) error
	ListPayments(ctx context.Context, owner *household.Member) ([]*Payment, error)
}

// ExpenseRecorder records the expense produced by paying a recurring payment.
type ExpenseRecorder interface {
	Create(ctx context.Context, params expense.CreateParams) (*expense.Expense, error)
}

type Service struct {
	repo     Repository
	expenses ExpenseRecorder
}

func NewService(repo Repository, expenses ExpenseRecorder) *Service {
	return &Service{repo: repo, expenses: expenses}
}

type CreateParams struct {
	Owner          household.Member
	Description    string
	Amount         int64
	Frequency      Frequency
	NextDue        time.Time
	Category       string
	Notes          string
	VariableAmount bool
	ReminderDays   int
}

type MarkPaidParams struct {
	ID     uuid.UUID
	PaidBy household.Member
	Today  time.Time
	// Amount overrides the stored amount; only allowed for variable-amount payments.
	Amount *int64
}

type MarkPaidResult struct {
	Payment *Payment
	Expense *expense.Expense
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Payment, error) {
	p := &Payment{
		Owner:          params.Owner,
		Description:    strings.TrimSpace(params.Description),
		Amount:         params.Amount,
		Frequency:      params.Frequency,
		NextDue:        params.NextDue,
		Category:       strings.TrimSpace(params.Category),
		Notes:          params.Notes,
		VariableAmount: params.VariableAmount,
		ReminderDays:   params.ReminderDays,
	}

	if err := validate(p); err != nil {
		return nil, err
	}

	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Get returns one of member's payments. Other members' payments are reported as not found.
func (s *Service) Get(ctx context.Context, member household.Member, id uuid.UUID) (*Payment, error) {
	p, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Owner != member {
		return nil, errs.ErrNotFound
	}

	return p, nil
}

func (s *Service) Update(ctx context.Context, member household.Member, p *Payment) error {
	current, err := s.Get(ctx, member, p.ID)
	if err != nil {
		return err
	}

	p.Owner = current.Owner
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)

	if err := validate(p); err != nil {
		return err
	}

	return s.repo.UpdatePayment(ctx, p)
}

func (s *Service) Delete(ctx context.Context, member household.Member, id uuid.UUID) error {
	if _, err := s.Get(ctx, member, id); err != nil {
		return err
	}

	return s.repo.DeletePayment(ctx, id)
}

// List returns payments of owner, or of the whole household when owner is nil.
func (s *Service) List(ctx context.Context, owner *household.Member) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, owner)
}

// MarkPaid records an expense dated today for one of PaidBy's payments and moves NextDue forward one
// period. The next due date is computed before anything is written. The two writes are not atomic: when the
// due-date update fails the expense stays recorded and the error says so.
func (s *Service) MarkPaid(ctx context.Context, params MarkPaidParams) (*MarkPaidResult, error) {
	p, err := s.Get(ctx, params.PaidBy, params.ID)
	if err != nil {
		return nil, err
	}

	next, err := Advance(p.NextDue, p.Frequency)
	if err != nil {
		return nil, err
	}

	amount := p.Amount

	if params.Amount != nil {
		if !p.VariableAmount {
			return nil, errs.Invalid("amount", "only variable-amount payments accept an amount")
		}

		amount = *params.Amount
	}

	category := p.Category
	if category == "" {
		category = DefaultCategory
	}

	e, err := s.expenses.Create(ctx, expense.CreateParams{
		Owner:       params.PaidBy,
		Description: p.Description,
		Amount:      amount,
		Category:    category,
		Date:        dates.Day(params.Today),
	})
	if err != nil {
		return nil, fmt.Errorf("recording payment expense: %w", err)
	}

	p.NextDue = next

	if err := s.repo.UpdatePayment(ctx, p); err != nil {
		return &MarkPaidResult{Expense: e}, fmt.Errorf("expense %s recorded but advancing due date failed: %w", e.ID, err)
	}

	return &MarkPaidResult{Payment: p, Expense: e}, nil
}

func validate(p *Payment) error {
	if p.Description == "" {
		return errs.Invalid("description", "must not be empty")
	}

	if p.Amount < 0 || (p.Amount == 0 && !p.VariableAmount) {
		return errs.Invalid("amount", "must be greater than zero")
	}

	if !p.Frequency.Valid() {
		return errs.Invalid("frequency", fmt.Sprintf("unknown frequency %q", p.Frequency))
	}

	if p.NextDue.IsZero() {
		return errs.Invalid("next_due", "is required")
	}

	p.NextDue = dates.Day(p.NextDue)

	if p.ReminderDays < 0 {
		return errs.Invalid("reminder_days", "must not be negative")
	}

	return nil
}
