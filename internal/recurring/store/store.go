package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
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

const selectPaymentColumns = `
	id, owner, description, amount, frequency, next_due, category, notes, variable_amount, reminder_days, created_at
`

func scanPayment(s scanner) (*recurring.Payment, error) {
	var p recurring.Payment

	var owner, freq string

	if err := s.Scan(
		&p.ID, &owner, &p.Description, &p.Amount, &freq, &p.NextDue,
		&p.Category, &p.Notes, &p.VariableAmount, &p.ReminderDays, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	p.Owner = household.Member(owner)
	p.Frequency = recurring.Frequency(freq)

	return &p, nil
}

func (s *Store) CreatePayment(ctx context.Context, p *recurring.Payment) error {
	query := `
		INSERT INTO recurring_payments
			(owner, description, amount, frequency, next_due, category, notes, variable_amount, reminder_days, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Owner, p.Description, p.Amount, p.Frequency, p.NextDue,
		p.Category, p.Notes, p.VariableAmount, p.ReminderDays,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return errs.Store("creating recurring payment", err)
	}

	return nil
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*recurring.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM recurring_payments WHERE id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, errs.Store("getting recurring payment", err)
	}

	return p, nil
}

func (s *Store) UpdatePayment(ctx context.Context, p *recurring.Payment) error {
	query := `
		UPDATE recurring_payments
		SET description = $1, amount = $2, frequency = $3, next_due = $4, category = $5,
			notes = $6, variable_amount = $7, reminder_days = $8
		WHERE id = $9
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Description, p.Amount, p.Frequency, p.NextDue, p.Category,
		p.Notes, p.VariableAmount, p.ReminderDays, p.ID,
	)
	if err != nil {
		return errs.Store("updating recurring payment", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errs.Store("updating recurring payment", err)
	}

	if n == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (s *Store) DeletePayment(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recurring_payments WHERE id = $1`, id)
	if err != nil {
		return errs.Store("deleting recurring payment", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errs.Store("deleting recurring payment", err)
	}

	if n == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (s *Store) ListPayments(ctx context.Context, owner *household.Member) ([]*recurring.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM recurring_payments`

	var args []any

	if owner != nil {
		query += ` WHERE owner = $1`

		args = append(args, *owner)
	}

	query += ` ORDER BY next_due ASC, description ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errs.Store("listing recurring payments", err)
	}
	defer rows.Close()

	var list []*recurring.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, errs.Store("scanning recurring payment", err)
		}

		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing recurring payments", err)
	}

	return list, nil
}

var _ recurring.Repository = (*Store)(nil)
