package debt

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
	"github.com/MrJamesThe3rd/buxfer/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=debt
type Repository interface {
	CreateDebt(ctx context.Context, d *Debt) error
	GetDebt(ctx context.Context, id uuid.UUID) (*Debt, error)
	UpdateDebt(ctx context.Context, d *Debt) error
	DeleteDebt(ctx context.Context, id uuid.UUID) error
	ListDebts(ctx context.Context, kind Kind) ([]*Debt, error)
	// RecordPayment stores p and d's new remaining amount together.
	RecordPayment(ctx context.Context, d *Debt, p *Payment) error
}

// ExpenseRecorder records the expenses produced by taking on and repaying debts.
type ExpenseRecorder interface {
	Create(ctx context.Context, params expense.CreateParams) (*expense.Expense, error)
}

type Service struct {
	repo      Repository
	expenses  ExpenseRecorder
	household *household.Household
}

func NewService(repo Repository, expenses ExpenseRecorder, hh *household.Household) *Service {
	return &Service{repo: repo, expenses: expenses, household: hh}
}

type CreateParams struct {
	Owner       household.Member
	Description string
	TotalAmount int64
	Shared      bool
	Date        time.Time
}

type CreatePersonalParams struct {
	Owner         household.Member
	Description   string
	TotalAmount   int64
	PaymentAmount int64
	Date          time.Time
}

type PayResult struct {
	Debt    *Debt
	Payment Payment
	Expense *expense.Expense
}

// Create stores a household debt and records the matching "Debts" expense, split with the
// counterpart when the debt is shared.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Debt, *expense.Expense, error) {
	d := &Debt{
		Owner:           params.Owner,
		Kind:            KindHousehold,
		Description:     strings.TrimSpace(params.Description),
		TotalAmount:     params.TotalAmount,
		RemainingAmount: params.TotalAmount,
		Shared:          params.Shared,
		Date:            dates.Day(params.Date),
	}

	if err := s.validate(d, params.Date); err != nil {
		return nil, nil, err
	}

	if err := s.repo.CreateDebt(ctx, d); err != nil {
		return nil, nil, err
	}

	e, err := s.expenses.Create(ctx, s.expenseParams(d, d.Description, d.TotalAmount, CategoryDebts, d.Owner, d.Date))
	if err != nil {
		return d, nil, fmt.Errorf("debt %s recorded but creating its expense failed: %w", d.ID, err)
	}

	return d, e, nil
}

// CreatePersonal stores a personal debt repaid in fixed instalments.
func (s *Service) CreatePersonal(ctx context.Context, params CreatePersonalParams) (*Debt, error) {
	if !s.household.CanViewPersonalDebts(params.Owner) {
		return nil, errs.Invalid("owner", "not allowed to manage personal debts")
	}

	d := &Debt{
		Owner:           params.Owner,
		Kind:            KindPersonal,
		Description:     strings.TrimSpace(params.Description),
		TotalAmount:     params.TotalAmount,
		RemainingAmount: params.TotalAmount,
		PaymentAmount:   params.PaymentAmount,
		Date:            dates.Day(params.Date),
	}

	if err := s.validate(d, params.Date); err != nil {
		return nil, err
	}

	if d.PaymentAmount <= 0 {
		return nil, errs.Invalid("payment_amount", "must be greater than zero")
	}

	if err := s.repo.CreateDebt(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// Pay applies one payment by member and records it as a "Debt Payments" expense.
func (s *Service) Pay(ctx context.Context, member household.Member, id uuid.UUID, today time.Time) (*PayResult, error) {
	d, err := s.get(ctx, member, id)
	if err != nil {
		return nil, err
	}

	p, err := ApplyPayment(d, member, today)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RecordPayment(ctx, d, &p); err != nil {
		return nil, err
	}

	d.Payments[len(d.Payments)-1] = p

	desc := "Payment for: " + d.Description

	e, err := s.expenses.Create(ctx, s.expenseParams(d, desc, p.Amount, CategoryPayments, member, p.Date))
	if err != nil {
		return &PayResult{Debt: d, Payment: p}, fmt.Errorf("payment %s recorded but creating its expense failed: %w", p.ID, err)
	}

	return &PayResult{Debt: d, Payment: p, Expense: e}, nil
}

// UpdatePaymentAmount changes the instalment of a personal debt.
func (s *Service) UpdatePaymentAmount(ctx context.Context, member household.Member, id uuid.UUID, amount int64) (*Debt, error) {
	if amount <= 0 {
		return nil, errs.Invalid("payment_amount", "must be greater than zero")
	}

	d, err := s.get(ctx, member, id)
	if err != nil {
		return nil, err
	}

	if d.Kind != KindPersonal {
		return nil, errs.Invalid("kind", "only personal debts have an instalment")
	}

	d.PaymentAmount = amount

	if err := s.repo.UpdateDebt(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) Delete(ctx context.Context, member household.Member, id uuid.UUID) error {
	if _, err := s.get(ctx, member, id); err != nil {
		return err
	}

	return s.repo.DeleteDebt(ctx, id)
}

func (s *Service) Get(ctx context.Context, member household.Member, id uuid.UUID) (*Debt, error) {
	return s.get(ctx, member, id)
}

// Visible lists household debts, plus personal debts when member may see them.
func (s *Service) Visible(ctx context.Context, member household.Member) ([]*Debt, error) {
	list, err := s.repo.ListDebts(ctx, KindHousehold)
	if err != nil {
		return nil, err
	}

	if !s.household.CanViewPersonalDebts(member) {
		return list, nil
	}

	personal, err := s.repo.ListDebts(ctx, KindPersonal)
	if err != nil {
		return nil, err
	}

	return append(list, personal...), nil
}

// get hides personal debts from members who may not see them.
func (s *Service) get(ctx context.Context, member household.Member, id uuid.UUID) (*Debt, error) {
	d, err := s.repo.GetDebt(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.Kind == KindPersonal && !s.household.CanViewPersonalDebts(member) {
		return nil, errs.ErrNotFound
	}

	return d, nil
}

func (s *Service) validate(d *Debt, rawDate time.Time) error {
	if !s.household.Contains(d.Owner) {
		return errs.Invalid("owner", fmt.Sprintf("%q is not a household member", d.Owner))
	}

	if d.Description == "" {
		return errs.Invalid("description", "must not be empty")
	}

	if d.TotalAmount <= 0 {
		return errs.Invalid("total_amount", "must be greater than zero")
	}

	if rawDate.IsZero() {
		return errs.Invalid("date", "is required")
	}

	return nil
}

func (s *Service) expenseParams(d *Debt, desc string, amount int64, category string, owner household.Member, on time.Time) expense.CreateParams {
	params := expense.CreateParams{
		Owner:       owner,
		Description: desc,
		Amount:      amount,
		Category:    category,
		Date:        on,
	}

	if d.Shared {
		if partner, ok := s.household.Counterpart(owner); ok {
			params.SplitWith = &partner
			params.SplitAmount = new(money.Half(amount))
		}
	}

	return params
}
