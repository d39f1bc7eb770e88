package todo

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=todo
type Repository interface {
	CreateTodo(ctx context.Context, t *Todo) error
	GetTodo(ctx context.Context, id uuid.UUID) (*Todo, error)
	UpdateTodo(ctx context.Context, t *Todo) error
	DeleteTodo(ctx context.Context, id uuid.UUID) error
	// ListTodos returns the owner's todos ordered by position.
	ListTodos(ctx context.Context, owner household.Member) ([]*Todo, error)
	// SwapPositions exchanges the positions of a and b.
	SwapPositions(ctx context.Context, a, b *Todo) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create appends a todo at the end of the owner's list.
func (s *Service) Create(ctx context.Context, owner household.Member, text string, due *time.Time) (*Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.Invalid("text", "must not be empty")
	}

	existing, err := s.repo.ListTodos(ctx, owner)
	if err != nil {
		return nil, err
	}

	position := 0
	for _, t := range existing {
		position = max(position, t.Position+1)
	}

	t := &Todo{Owner: owner, Text: text, Position: position}

	if due != nil && !due.IsZero() {
		t.Due = new(dates.Day(*due))
	}

	if err := s.repo.CreateTodo(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Toggle flips the done flag of one of member's todos.
func (s *Service) Toggle(ctx context.Context, member household.Member, id uuid.UUID) (*Todo, error) {
	t, err := s.get(ctx, member, id)
	if err != nil {
		return nil, err
	}

	t.Done = !t.Done

	if err := s.repo.UpdateTodo(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Delete(ctx context.Context, member household.Member, id uuid.UUID) error {
	if _, err := s.get(ctx, member, id); err != nil {
		return err
	}

	return s.repo.DeleteTodo(ctx, id)
}

func (s *Service) List(ctx context.Context, owner household.Member) ([]*Todo, error) {
	return s.repo.ListTodos(ctx, owner)
}

// Move shifts a todo one place up (delta -1) or down (delta +1) by swapping with its neighbour.
// Moving past either end is a no-op.
func (s *Service) Move(ctx context.Context, member household.Member, id uuid.UUID, delta int) ([]*Todo, error) {
	if delta != -1 && delta != 1 {
		return nil, errs.Invalid("delta", "must be -1 or 1")
	}

	t, err := s.get(ctx, member, id)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListTodos(ctx, t.Owner)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(list, func(o *Todo) bool { return o.ID == id })
	if i < 0 {
		return nil, errs.ErrNotFound
	}

	j := i + delta
	if j < 0 || j >= len(list) {
		return list, nil
	}

	if err := s.repo.SwapPositions(ctx, list[i], list[j]); err != nil {
		return nil, err
	}

	list[i].Position, list[j].Position = list[j].Position, list[i].Position
	list[i], list[j] = list[j], list[i]

	return list, nil
}

// get hides other members' todos behind ErrNotFound.
func (s *Service) get(ctx context.Context, member household.Member, id uuid.UUID) (*Todo, error) {
	t, err := s.repo.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Owner != member {
		return nil, errs.ErrNotFound
	}

	return t, nil
}
