package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/goal"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const (
	selectBudgetColumns  = `id, owner, name, target_amount, current_amount, category, deadline`
	selectSavingsColumns = `id, owner, name, target_amount, current_amount, deadline, color`
)

func scanBudget(s scanner) (*goal.BudgetGoal, error) {
	var g goal.BudgetGoal

	var owner string

	if err := s.Scan(&g.ID, &owner, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Category, &g.Deadline); err != nil {
		return nil, err
	}

	g.Owner = household.Member(owner)

	return &g, nil
}

func scanSavings(s scanner) (*goal.SavingsGoal, error) {
	var g goal.SavingsGoal

	var owner string

	if err := s.Scan(&g.ID, &owner, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline, &g.Color); err != nil {
		return nil, err
	}

	g.Owner = household.Member(owner)

	return &g, nil
}

func (s *Store) CreateBudgetGoal(ctx context.Context, g *goal.BudgetGoal) error {
	query := `
		INSERT INTO budget_goals (owner, name, target_amount, current_amount, category, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		g.Owner, g.Name, g.TargetAmount, g.CurrentAmount, g.Category, g.Deadline,
	).Scan(&g.ID)
	if err != nil {
		return errs.Store("creating budget goal", err)
	}

	return nil
}

func (s *Store) GetBudgetGoal(ctx context.Context, id uuid.UUID) (*goal.BudgetGoal, error) {
	query := `SELECT ` + selectBudgetColumns + ` FROM budget_goals WHERE id = $1`

	g, err := scanBudget(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, errs.Store("getting budget goal", err)
	}

	return g, nil
}

func (s *Store) UpdateBudgetGoal(ctx context.Context, g *goal.BudgetGoal) error {
	query := `
		UPDATE budget_goals
		SET name = $1, target_amount = $2, current_amount = $3, category = $4, deadline = $5
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query, g.Name, g.TargetAmount, g.CurrentAmount, g.Category, g.Deadline, g.ID)
	if err != nil {
		return errs.Store("updating budget goal", err)
	}

	return checkAffected(res, "updating budget goal")
}

func (s *Store) DeleteBudgetGoal(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM budget_goals WHERE id = $1`, id)
	if err != nil {
		return errs.Store("deleting budget goal", err)
	}

	return checkAffected(res, "deleting budget goal")
}

func (s *Store) ListBudgetGoals(ctx context.Context, owner household.Member) ([]*goal.BudgetGoal, error) {
	query := `SELECT ` + selectBudgetColumns + ` FROM budget_goals WHERE owner = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, errs.Store("listing budget goals", err)
	}
	defer rows.Close()

	var list []*goal.BudgetGoal

	for rows.Next() {
		g, err := scanBudget(rows)
		if err != nil {
			return nil, errs.Store("scanning budget goal", err)
		}

		list = append(list, g)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing budget goals", err)
	}

	return list, nil
}

func (s *Store) AddToBudgetGoals(ctx context.Context, owner household.Member, category string, amount int64) (int64, error) {
	query := `UPDATE budget_goals SET current_amount = current_amount + $1 WHERE owner = $2 AND category = $3`

	res, err := s.db.ExecContext(ctx, query, amount, owner, category)
	if err != nil {
		return 0, errs.Store("adding to budget goals", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errs.Store("adding to budget goals", err)
	}

	return n, nil
}

func (s *Store) CreateSavingsGoal(ctx context.Context, g *goal.SavingsGoal) error {
	query := `
		INSERT INTO savings_goals (owner, name, target_amount, current_amount, deadline, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		g.Owner, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Color,
	).Scan(&g.ID)
	if err != nil {
		return errs.Store("creating savings goal", err)
	}

	return nil
}

func (s *Store) GetSavingsGoal(ctx context.Context, id uuid.UUID) (*goal.SavingsGoal, error) {
	query := `SELECT ` + selectSavingsColumns + ` FROM savings_goals WHERE id = $1`

	g, err := scanSavings(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, errs.Store("getting savings goal", err)
	}

	return g, nil
}

func (s *Store) UpdateSavingsGoal(ctx context.Context, g *goal.SavingsGoal) error {
	query := `
		UPDATE savings_goals
		SET name = $1, target_amount = $2, current_amount = $3, deadline = $4, color = $5
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Color, g.ID)
	if err != nil {
		return errs.Store("updating savings goal", err)
	}

	return checkAffected(res, "updating savings goal")
}

func (s *Store) DeleteSavingsGoal(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM savings_goals WHERE id = $1`, id)
	if err != nil {
		return errs.Store("deleting savings goal", err)
	}

	return checkAffected(res, "deleting savings goal")
}

func (s *Store) ListSavingsGoals(ctx context.Context, owner household.Member) ([]*goal.SavingsGoal, error) {
	query := `SELECT ` + selectSavingsColumns + ` FROM savings_goals WHERE owner = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, errs.Store("listing savings goals", err)
	}
	defer rows.Close()

	var list []*goal.SavingsGoal

	for rows.Next() {
		g, err := scanSavings(rows)
		if err != nil {
			return nil, errs.Store("scanning savings goal", err)
		}

		list = append(list, g)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing savings goals", err)
	}

	return list, nil
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

var _ goal.Repository = (*Store)(nil)
