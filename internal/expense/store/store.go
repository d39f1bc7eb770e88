package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
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

// Expected column order: id, owner, description, amount, category, date, split_with, split_amount, created_at
func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var owner string

	var splitWith sql.NullString

	var splitAmount sql.NullInt64

	if err := s.Scan(
		&e.ID, &owner, &e.Description, &e.Amount, &e.Category, &e.Date,
		&splitWith, &splitAmount, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	e.Owner = household.Member(owner)

	if splitWith.Valid {
		e.SplitWith = new(household.Member(splitWith.String))
	}

	if splitAmount.Valid {
		e.SplitAmount = new(splitAmount.Int64)
	}

	return &e, nil
}

const selectExpenseColumns = `id, owner, description, amount, category, date, split_with, split_amount, created_at`

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (owner, description, amount, category, date, split_with, split_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Owner,
		e.Description,
		e.Amount,
		e.Category,
		e.Date,
		nullMember(e.SplitWith),
		e.SplitAmount,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return errs.Store("creating expense", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses WHERE id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, errs.Store("getting expense", err)
	}

	return e, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET description = $1, amount = $2, category = $3, date = $4, split_with = $5, split_amount = $6
		WHERE id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		e.Description, e.Amount, e.Category, e.Date, nullMember(e.SplitWith), e.SplitAmount, e.ID)
	if err != nil {
		return errs.Store("updating expense", err)
	}

	return checkAffected(res, "updating expense")
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return errs.Store("deleting expense", err)
	}

	return checkAffected(res, "deleting expense")
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Owner != nil {
		query += fmt.Sprintf(" AND owner = $%d", argIdx)

		args = append(args, *filter.Owner)
		argIdx++
	}

	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)

		args = append(args, filter.Category)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.MinAmount != nil {
		query += fmt.Sprintf(" AND amount >= $%d", argIdx)

		args = append(args, *filter.MinAmount)
		argIdx++
	}

	if filter.MaxAmount != nil {
		query += fmt.Sprintf(" AND amount <= $%d", argIdx)

		args = append(args, *filter.MaxAmount)
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errs.Store("listing expenses", err)
	}
	defer rows.Close()

	var list []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, errs.Store("scanning expense", err)
		}

		list = append(list, e)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing expenses", err)
	}

	return list, nil
}

func nullMember(m *household.Member) *string {
	if m == nil {
		return nil
	}

	return new(string(*m))
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

var _ expense.Repository = (*Store)(nil)
