package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
}

// Categorizer resolves categories for new expenses.
type Categorizer interface {
	Categorize(ctx context.Context, description string) (string, error)
	Exists(ctx context.Context, name string) (bool, error)
	Default() string
}

// GoalTracker is notified of every new expense so budget goals can accumulate spending.
type GoalTracker interface {
	TrackExpense(ctx context.Context, owner household.Member, category string, amount int64) error
}

type Service struct {
	repo       Repository
	categories Categorizer
	goals      GoalTracker
	household  *household.Household
}

func NewService(repo Repository, categories Categorizer, goals GoalTracker, hh *household.Household) *Service {
	return &Service{repo: repo, categories: categories, goals: goals, household: hh}
}

type CreateParams struct {
	Owner       household.Member
	Description string
	Amount      int64
	Category    string
	Date        time.Time
	SplitWith   *household.Member
	SplitAmount *int64
}

type ListFilter struct {
	Owner     *household.Member
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *int64
	MaxAmount *int64
}

// Create validates and stores a new expense. An empty or default category is replaced by the
// auto-categorizer, and split expenses without an explicit share are split in half.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	e := &Expense{
		Owner:       params.Owner,
		Description: strings.TrimSpace(params.Description),
		Amount:      params.Amount,
		Category:    strings.TrimSpace(params.Category),
		Date:        dates.Day(params.Date),
		SplitWith:   params.SplitWith,
		SplitAmount: params.SplitAmount,
	}

	if e.Description == "" {
		return nil, errs.Invalid("description", "must not be empty")
	}

	if e.Category == "" || e.Category == s.categories.Default() {
		category, err := s.categories.Categorize(ctx, e.Description)
		if err != nil {
			return nil, fmt.Errorf("categorizing expense: %w", err)
		}

		e.Category = category
	}

	if e.IsSplit() && e.SplitAmount == nil {
		e.SplitAmount = new(money.Half(e.Amount))
	}

	if err := s.validate(ctx, e, params.Date); err != nil {
		return nil, err
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	if s.goals != nil {
		if err := s.goals.TrackExpense(ctx, e.Owner, e.Category, e.Amount); err != nil {
			slog.Error("failed to track expense against budget goals", "expense", e.ID, "error", err)
		}
	}

	return e, nil
}

// CreateBatch creates expenses in order and stops at the first failure, returning what was created.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Expense, error) {
	created := make([]*Expense, 0, len(params))

	for i, p := range params {
		e, err := s.Create(ctx, p)
		if err != nil {
			return created, fmt.Errorf("creating expense %d: %w", i+1, err)
		}

		created = append(created, e)
	}

	return created, nil
}

// Get returns one of member's expenses. Other members' expenses are reported as not found.
func (s *Service) Get(ctx context.Context, member household.Member, id uuid.UUID) (*Expense, error) {
	e, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.Owner != member {
		return nil, errs.ErrNotFound
	}

	return e, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

// Update replaces the editable fields of one of member's expenses. The owner cannot change and
// budget goals are not re-tracked.
func (s *Service) Update(ctx context.Context, member household.Member, e *Expense) error {
	current, err := s.Get(ctx, member, e.ID)
	if err != nil {
		return err
	}

	e.Owner = current.Owner

	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		return errs.Invalid("description", "must not be empty")
	}

	raw := e.Date
	e.Date = dates.Day(e.Date)

	if e.IsSplit() && e.SplitAmount == nil {
		e.SplitAmount = new(money.Half(e.Amount))
	}

	if !e.IsSplit() {
		e.SplitAmount = nil
	}

	if err := s.validate(ctx, e, raw); err != nil {
		return err
	}

	return s.repo.UpdateExpense(ctx, e)
}

func (s *Service) Delete(ctx context.Context, member household.Member, id uuid.UUID) error {
	if _, err := s.Get(ctx, member, id); err != nil {
		return err
	}

	return s.repo.DeleteExpense(ctx, id)
}

func (s *Service) validate(ctx context.Context, e *Expense, rawDate time.Time) error {
	if !s.household.Contains(e.Owner) {
		return errs.Invalid("owner", fmt.Sprintf("%q is not a household member", e.Owner))
	}

	if e.Amount <= 0 {
		return errs.Invalid("amount", "must be greater than zero")
	}

	if rawDate.IsZero() {
		return errs.Invalid("date", "is required")
	}

	ok, err := s.categories.Exists(ctx, e.Category)
	if err != nil {
		return err
	}

	if !ok {
		return errs.Invalid("category", fmt.Sprintf("unknown category %q", e.Category))
	}

	if e.IsSplit() {
		if *e.SplitWith == e.Owner || !s.household.Contains(*e.SplitWith) {
			return errs.Invalid("split_with", "must be another household member")
		}

		if *e.SplitAmount < 0 || *e.SplitAmount > e.Amount {
			return errs.Invalid("split_amount", "must be between zero and the amount")
		}
	}

	return nil
}
