package income

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

// PrimaryName labels a member's wage.
const PrimaryName = "Wage"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=income
type Repository interface {
	// UpsertPrimary creates or replaces the owner's primary source.
	UpsertPrimary(ctx context.Context, s *Source) error
	CreateSource(ctx context.Context, s *Source) error
	// DeleteSource removes one of owner's sources; a source of another member is not found.
	DeleteSource(ctx context.Context, owner household.Member, id uuid.UUID) error
	ListSources(ctx context.Context, owner *household.Member) ([]*Source, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetPrimary records the member's wage, replacing any earlier one.
func (s *Service) SetPrimary(ctx context.Context, owner household.Member, amount int64, payDate *time.Time) (*Source, error) {
	if amount < 0 {
		return nil, errs.Invalid("amount", "must not be negative")
	}

	src := &Source{
		Owner:   owner,
		Name:    PrimaryName,
		Amount:  amount,
		PayDate: dayPtr(payDate),
		Primary: true,
	}

	if err := s.repo.UpsertPrimary(ctx, src); err != nil {
		return nil, err
	}

	return src, nil
}

func (s *Service) AddSource(ctx context.Context, owner household.Member, name string, amount int64, payDate *time.Time) (*Source, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Invalid("name", "must not be empty")
	}

	if amount <= 0 {
		return nil, errs.Invalid("amount", "must be greater than zero")
	}

	src := &Source{Owner: owner, Name: name, Amount: amount, PayDate: dayPtr(payDate)}

	if err := s.repo.CreateSource(ctx, src); err != nil {
		return nil, err
	}

	return src, nil
}

func (s *Service) DeleteSource(ctx context.Context, member household.Member, id uuid.UUID) error {
	return s.repo.DeleteSource(ctx, member, id)
}

// List returns the sources of owner, or of the whole household when owner is nil.
func (s *Service) List(ctx context.Context, owner *household.Member) ([]*Source, error) {
	return s.repo.ListSources(ctx, owner)
}

func (s *Service) Totals(ctx context.Context, owner *household.Member) (Totals, error) {
	sources, err := s.repo.ListSources(ctx, owner)
	if err != nil {
		return Totals{}, err
	}

	return Summarize(sources), nil
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}

	return new(dates.Day(*t))
}
