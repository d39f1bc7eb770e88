package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	ListRules(ctx context.Context) ([]*Rule, error)
	CreateRule(ctx context.Context, r *Rule) error
	UpdateRule(ctx context.Context, r *Rule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	RenameCategory(ctx context.Context, from, to string) error
	DeleteCategory(ctx context.Context, name string) error
}

type Service struct {
	repo Repository
	opts []Option
}

// NewService returns a Service whose categorizers are built with opts.
func NewService(repo Repository, opts ...Option) *Service {
	return &Service{repo: repo, opts: opts}
}

// Categorizer snapshots the current rule table.
func (s *Service) Categorizer(ctx context.Context) (*Categorizer, error) {
	rules, err := s.repo.ListRules(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make([]Rule, len(rules))
	for i, r := range rules {
		snapshot[i] = *r
	}

	return NewCategorizer(snapshot, s.opts...), nil
}

func (s *Service) Categorize(ctx context.Context, description string) (string, error) {
	c, err := s.Categorizer(ctx)
	if err != nil {
		return "", err
	}

	return c.Categorize(description), nil
}

// Default returns the configured fallback category.
func (s *Service) Default() string {
	return NewCategorizer(nil, s.opts...).Default()
}

func (s *Service) ListRules(ctx context.Context) ([]*Rule, error) {
	return s.repo.ListRules(ctx)
}

func (s *Service) AddRule(ctx context.Context, keyword, category string) (*Rule, error) {
	rules, err := s.repo.ListRules(ctx)
	if err != nil {
		return nil, err
	}

	keyword, err = s.validateRule(ctx, rules, uuid.Nil, keyword, category)
	if err != nil {
		return nil, err
	}

	position := 0
	for _, r := range rules {
		position = max(position, r.Position+1)
	}

	r := &Rule{Keyword: keyword, Category: category, Position: position}
	if err := s.repo.CreateRule(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) UpdateRule(ctx context.Context, id uuid.UUID, keyword, category string) (*Rule, error) {
	rules, err := s.repo.ListRules(ctx)
	if err != nil {
		return nil, err
	}

	var existing *Rule

	for _, r := range rules {
		if r.ID == id {
			existing = r
			break
		}
	}

	if existing == nil {
		return nil, errs.ErrNotFound
	}

	keyword, err = s.validateRule(ctx, rules, id, keyword, category)
	if err != nil {
		return nil, err
	}

	existing.Keyword = keyword
	existing.Category = category

	if err := s.repo.UpdateRule(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *Service) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRule(ctx, id)
}

func (s *Service) validateRule(ctx context.Context, rules []*Rule, self uuid.UUID, keyword, category string) (string, error) {
	keyword = NormalizeKeyword(keyword)
	if keyword == "" {
		return "", errs.Invalid("keyword", "must not be empty")
	}

	for _, r := range rules {
		if r.Keyword == keyword && r.ID != self {
			return "", errs.Invalid("keyword", fmt.Sprintf("%q already exists", keyword))
		}
	}

	ok, err := s.Exists(ctx, category)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", errs.Invalid("category", fmt.Sprintf("unknown category %q", category))
	}

	return keyword, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return false, err
	}

	for _, c := range cats {
		if c.Name == name {
			return true, nil
		}
	}

	return false, nil
}

func (s *Service) AddCategory(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Invalid("name", "must not be empty")
	}

	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return nil, errs.Invalid("name", fmt.Sprintf("category %q already exists", c.Name))
		}
	}

	c := &Category{Name: name, Position: len(cats)}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// RenameCategory renames a category; rules pointing at it follow the new name.
func (s *Service) RenameCategory(ctx context.Context, from, to string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return errs.Invalid("name", "must not be empty")
	}

	if from == to {
		return nil
	}

	ok, err := s.Exists(ctx, to)
	if err != nil {
		return err
	}

	if ok {
		return errs.Invalid("name", fmt.Sprintf("category %q already exists", to))
	}

	return s.repo.RenameCategory(ctx, from, to)
}

// DeleteCategory removes a category together with its rules. The default category cannot be deleted.
func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	if name == s.Default() {
		return errs.Invalid("name", "the default category cannot be deleted")
	}

	return s.repo.DeleteCategory(ctx, name)
}

// SeedDefaults loads the built-in table when no categories exist yet, then makes sure the configured
// fallback category exists so uncategorized expenses always have somewhere to go.
func (s *Service) SeedDefaults(ctx context.Context) error {
	existing, err := s.repo.ListCategories(ctx)
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		if existing, err = s.seed(ctx); err != nil {
			return err
		}
	}

	return s.ensureDefault(ctx, existing)
}

func (s *Service) seed(ctx context.Context) ([]*Category, error) {
	cats, rules, err := Defaults()
	if err != nil {
		return nil, err
	}

	seeded := make([]*Category, len(cats))

	for i := range cats {
		if err := s.repo.CreateCategory(ctx, &cats[i]); err != nil {
			return nil, fmt.Errorf("seeding category %q: %w", cats[i].Name, err)
		}

		seeded[i] = &cats[i]
	}

	for i := range rules {
		if err := s.repo.CreateRule(ctx, &rules[i]); err != nil {
			return nil, fmt.Errorf("seeding rule %q: %w", rules[i].Keyword, err)
		}
	}

	slog.Info("seeded default categories", "categories", len(cats), "rules", len(rules))

	return seeded, nil
}

func (s *Service) ensureDefault(ctx context.Context, existing []*Category) error {
	name := s.Default()
	position := 0

	for _, c := range existing {
		if c.Name == name {
			return nil
		}

		position = max(position, c.Position+1)
	}

	if err := s.repo.CreateCategory(ctx, &Category{Name: name, Position: position}); err != nil {
		return fmt.Errorf("creating default category %q: %w", name, err)
	}

	slog.Info("created missing default category", "category", name)

	return nil
}
