package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/debt"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
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

const selectDebtColumns = `
	id, owner, kind, description, total_amount, remaining_amount, shared, payment_amount, date, created_at
`

func scanDebt(s scanner) (*debt.Debt, error) {
	var d debt.Debt

	var owner, kind string

	if err := s.Scan(
		&d.ID, &owner, &kind, &d.Description, &d.TotalAmount, &d.RemainingAmount,
		&d.Shared, &d.PaymentAmount, &d.Date, &d.CreatedAt,
	); err != nil {
		return nil, err
	}

	d.Owner = household.Member(owner)
	d.Kind = debt.Kind(kind)

	return &d, nil
}

func (s *Store) CreateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		INSERT INTO debts
			(owner, kind, description, total_amount, remaining_amount, shared, payment_amount, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.Owner, d.Kind, d.Description, d.TotalAmount, d.RemainingAmount, d.Shared, d.PaymentAmount, d.Date,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return errs.Store("creating debt", err)
	}

	return nil
}

func (s *Store) GetDebt(ctx context.Context, id uuid.UUID) (*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + ` FROM debts WHERE id = $1`

	d, err := scanDebt(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, errs.Store("getting debt", err)
	}

	payments, err := s.listPayments(ctx, `WHERE debt_id = $1`, id)
	if err != nil {
		return nil, err
	}

	d.Payments = payments[d.ID]

	return d, nil
}

func (s *Store) UpdateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		UPDATE debts
		SET description = $1, total_amount = $2, remaining_amount = $3, shared = $4, payment_amount = $5, date = $6
		WHERE id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		d.Description, d.TotalAmount, d.RemainingAmount, d.Shared, d.PaymentAmount, d.Date, d.ID)
	if err != nil {
		return errs.Store("updating debt", err)
	}

	return checkAffected(res, "updating debt")
}

func (s *Store) DeleteDebt(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1`, id)
	if err != nil {
		return errs.Store("deleting debt", err)
	}

	return checkAffected(res, "deleting debt")
}

func (s *Store) ListDebts(ctx context.Context, kind debt.Kind) ([]*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + ` FROM debts WHERE kind = $1 ORDER BY date DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, errs.Store("listing debts", err)
	}
	defer rows.Close()

	var list []*debt.Debt

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, errs.Store("scanning debt", err)
		}

		list = append(list, d)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing debts", err)
	}

	if len(list) == 0 {
		return list, nil
	}

	payments, err := s.listPayments(ctx, `WHERE debt_id IN (SELECT id FROM debts WHERE kind = $1)`, kind)
	if err != nil {
		return nil, err
	}

	for _, d := range list {
		d.Payments = payments[d.ID]
	}

	return list, nil
}

// RecordPayment inserts p and stores d's remaining amount in one transaction.
func (s *Store) RecordPayment(ctx context.Context, d *debt.Debt, p *debt.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Store("beginning payment", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO debt_payments (debt_id, amount, date, added_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := tx.QueryRowContext(ctx, query, d.ID, p.Amount, p.Date, p.AddedBy).Scan(&p.ID); err != nil {
		return errs.Store("recording payment", err)
	}

	res, err := tx.ExecContext(ctx, `UPDATE debts SET remaining_amount = $1 WHERE id = $2`, d.RemainingAmount, d.ID)
	if err != nil {
		return errs.Store("updating remaining amount", err)
	}

	if err := checkAffected(res, "updating remaining amount"); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errs.Store("committing payment", err)
	}

	return nil
}

func (s *Store) listPayments(ctx context.Context, where string, args ...any) (map[uuid.UUID][]debt.Payment, error) {
	query := `SELECT id, debt_id, amount, date, added_by FROM debt_payments ` + where + ` ORDER BY date ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errs.Store("listing debt payments", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]debt.Payment)

	for rows.Next() {
		var p debt.Payment

		var addedBy string

		if err := rows.Scan(&p.ID, &p.DebtID, &p.Amount, &p.Date, &addedBy); err != nil {
			return nil, errs.Store("scanning debt payment", err)
		}

		p.AddedBy = household.Member(addedBy)
		out[p.DebtID] = append(out[p.DebtID], p)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing debt payments", err)
	}

	return out, nil
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

var _ debt.Repository = (*Store)(nil)
