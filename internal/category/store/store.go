package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/category"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListRules(ctx context.Context) ([]*category.Rule, error) {
	query := `
		SELECT id, keyword, category, position
		FROM category_rules
		ORDER BY position ASC, keyword ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errs.Store("listing rules", err)
	}
	defer rows.Close()

	var rules []*category.Rule

	for rows.Next() {
		var r category.Rule
		if err := rows.Scan(&r.ID, &r.Keyword, &r.Category, &r.Position); err != nil {
			return nil, errs.Store("scanning rule", err)
		}

		rules = append(rules, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing rules", err)
	}

	return rules, nil
}

func (s *Store) CreateRule(ctx context.Context, r *category.Rule) error {
	query := `
		INSERT INTO category_rules (keyword, category, position)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, r.Keyword, r.Category, r.Position).Scan(&r.ID); err != nil {
		return errs.Store("creating rule", err)
	}

	return nil
}

func (s *Store) UpdateRule(ctx context.Context, r *category.Rule) error {
	query := `UPDATE category_rules SET keyword = $1, category = $2, position = $3 WHERE id = $4`

	res, err := s.db.ExecContext(ctx, query, r.Keyword, r.Category, r.Position, r.ID)
	if err != nil {
		return errs.Store("updating rule", err)
	}

	return checkAffected(res, "updating rule")
}

func (s *Store) DeleteRule(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM category_rules WHERE id = $1`, id)
	if err != nil {
		return errs.Store("deleting rule", err)
	}

	return checkAffected(res, "deleting rule")
}

func (s *Store) ListCategories(ctx context.Context) ([]*category.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, position FROM categories ORDER BY position ASC, name ASC`)
	if err != nil {
		return nil, errs.Store("listing categories", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.Name, &c.Position); err != nil {
			return nil, errs.Store("scanning category", err)
		}

		cats = append(cats, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing categories", err)
	}

	return cats, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO categories (name, position) VALUES ($1, $2)`, c.Name, c.Position)
	if err != nil {
		return errs.Store("creating category", err)
	}

	return nil
}

// RenameCategory relies on ON UPDATE CASCADE to carry the rules along.
func (s *Store) RenameCategory(ctx context.Context, from, to string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE categories SET name = $1 WHERE name = $2`, to, from)
	if err != nil {
		return errs.Store("renaming category", err)
	}

	return checkAffected(res, "renaming category")
}

func (s *Store) DeleteCategory(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE name = $1`, name)
	if err != nil {
		return errs.Store("deleting category", err)
	}

	return checkAffected(res, "deleting category")
}

func checkAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errs.Store(op, err)
	}

	if n == 0 {
		return errs.ErrNotFound
	}

	return nil
}

var _ category.Repository = (*Store)(nil)

