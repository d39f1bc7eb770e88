package goal

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
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateBudgetGoal(ctx context.Context, g *BudgetGoal) error
	GetBudgetGoal(ctx context.Context, id uuid.UUID) (*BudgetGoal, error)
	UpdateBudgetGoal(ctx context.Context, g *BudgetGoal) error
	DeleteBudgetGoal(ctx context.Context, id uuid.UUID) error
	ListBudgetGoals(ctx context.Context, owner household.Member) ([]*BudgetGoal, error)
	// AddToBudgetGoals increments CurrentAmount of every goal of owner in category and
	// returns the number of goals touched.
	AddToBudgetGoals(ctx context.Context, owner household.Member, category string, amount int64) (int64, error)

	CreateSavingsGoal(ctx context.Context, g *SavingsGoal) error
	GetSavingsGoal(ctx context.Context, id uuid.UUID) (*SavingsGoal, error)
	UpdateSavingsGoal(ctx context.Context, g *SavingsGoal) error
	DeleteSavingsGoal(ctx context.Context, id uuid.UUID) error
	ListSavingsGoals(ctx context.Context, owner household.Member) ([]*SavingsGoal, error)
}

type CategoryChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}

type Service struct {
	repo       Repository
	categories CategoryChecker
}

func NewService(repo Repository, categories CategoryChecker) *Service {
	return &Service{repo: repo, categories: categories}
}

type CreateBudgetParams struct {
	Owner        household.Member
	Name         string
	TargetAmount int64
	Category     string
	Deadline     *time.Time
}

type CreateSavingsParams struct {
	Owner         household.Member
	Name          string
	TargetAmount  int64
	CurrentAmount int64
	Deadline      *time.Time
	Color         string
}

func (s *Service) CreateBudget(ctx context.Context, params CreateBudgetParams) (*BudgetGoal, error) {
	g := &BudgetGoal{
		Owner:        params.Owner,
		Name:         strings.TrimSpace(params.Name),
		TargetAmount: params.TargetAmount,
		Category:     params.Category,
		Deadline:     dayPtr(params.Deadline),
	}

	if err := validateGoal(g.Name, g.TargetAmount, 0); err != nil {
		return nil, err
	}

	ok, err := s.categories.Exists(ctx, g.Category)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, errs.Invalid("category", fmt.Sprintf("unknown category %q", g.Category))
	}

	if err := s.repo.CreateBudgetGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// UpdateBudgetCurrent overwrites the spent amount of one of member's budget goals.
func (s *Service) UpdateBudgetCurrent(ctx context.Context, member household.Member, id uuid.UUID, current int64) (*BudgetGoal, error) {
	if current < 0 {
		return nil, errs.Invalid("current_amount", "must not be negative")
	}

	g, err := s.getBudget(ctx, member, id)
	if err != nil {
		return nil, err
	}

	g.CurrentAmount = current

	if err := s.repo.UpdateBudgetGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) DeleteBudget(ctx context.Context, member household.Member, id uuid.UUID) error {
	if _, err := s.getBudget(ctx, member, id); err != nil {
		return err
	}

	return s.repo.DeleteBudgetGoal(ctx, id)
}

func (s *Service) ListBudget(ctx context.Context, owner household.Member) ([]*BudgetGoal, error) {
	return s.repo.ListBudgetGoals(ctx, owner)
}

// TrackExpense adds amount to the owner's budget goals for category.
func (s *Service) TrackExpense(ctx context.Context, owner household.Member, category string, amount int64) error {
	if amount <= 0 {
		return nil
	}

	n, err := s.repo.AddToBudgetGoals(ctx, owner, category, amount)
	if err != nil {
		return fmt.Errorf("tracking expense against budget goals: %w", err)
	}

	if n > 0 {
		slog.Debug("budget goals updated", "owner", owner, "category", category, "goals", n)
	}

	return nil
}

func (s *Service) CreateSavings(ctx context.Context, params CreateSavingsParams) (*SavingsGoal, error) {
	g := &SavingsGoal{
		Owner:         params.Owner,
		Name:          strings.TrimSpace(params.Name),
		TargetAmount:  params.TargetAmount,
		CurrentAmount: params.CurrentAmount,
		Deadline:      dayPtr(params.Deadline),
		Color:         params.Color,
	}

	if err := validateGoal(g.Name, g.TargetAmount, g.CurrentAmount); err != nil {
		return nil, err
	}

	if err := s.repo.CreateSavingsGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// UpdateSavingsCurrent records the saved amount. The returned goal reports whether the target is reached.
func (s *Service) UpdateSavingsCurrent(ctx context.Context, member household.Member, id uuid.UUID, current int64) (*SavingsGoal, error) {
	if current < 0 {
		return nil, errs.Invalid("current_amount", "must not be negative")
	}

	g, err := s.getSavings(ctx, member, id)
	if err != nil {
		return nil, err
	}

	g.CurrentAmount = current

	if err := s.repo.UpdateSavingsGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) DeleteSavings(ctx context.Context, member household.Member, id uuid.UUID) error {
	if _, err := s.getSavings(ctx, member, id); err != nil {
		return err
	}

	return s.repo.DeleteSavingsGoal(ctx, id)
}

func (s *Service) ListSavings(ctx context.Context, owner household.Member) ([]*SavingsGoal, error) {
	return s.repo.ListSavingsGoals(ctx, owner)
}

// getBudget and getSavings report other members' goals as not found.
func (s *Service) getBudget(ctx context.Context, member household.Member, id uuid.UUID) (*BudgetGoal, error) {
	g, err := s.repo.GetBudgetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if g.Owner != member {
		return nil, errs.ErrNotFound
	}

	return g, nil
}

func (s *Service) getSavings(ctx context.Context, member household.Member, id uuid.UUID) (*SavingsGoal, error) {
	g, err := s.repo.GetSavingsGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if g.Owner != member {
		return nil, errs.ErrNotFound
	}

	return g, nil
}

func validateGoal(name string, target, current int64) error {
	if name == "" {
		return errs.Invalid("name", "must not be empty")
	}

	if target <= 0 {
		return errs.Invalid("target_amount", "must be greater than zero")
	}

	if current < 0 {
		return errs.Invalid("current_amount", "must not be negative")
	}

	return nil
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}

	return new(dates.Day(*t))
}
