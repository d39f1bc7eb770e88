package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/income"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertPrimary(ctx context.Context, src *income.Source) error {
	query := `
		INSERT INTO income_sources (owner, name, amount, pay_date, is_primary)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (owner) WHERE is_primary
		DO UPDATE SET amount = EXCLUDED.amount, pay_date = EXCLUDED.pay_date, name = EXCLUDED.name
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, src.Owner, src.Name, src.Amount, src.PayDate).Scan(&src.ID); err != nil {
		return errs.Store("upserting primary income", err)
	}

	return nil
}

func (s *Store) CreateSource(ctx context.Context, src *income.Source) error {
	query := `
		INSERT INTO income_sources (owner, name, amount, pay_date, is_primary)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, src.Owner, src.Name, src.Amount, src.PayDate).Scan(&src.ID); err != nil {
		return errs.Store("creating income source", err)
	}

	return nil
}

func (s *Store) DeleteSource(ctx context.Context, owner household.Member, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM income_sources WHERE id = $1 AND owner = $2`, id, owner)
	if err != nil {
		return errs.Store("deleting income source", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errs.Store("deleting income source", err)
	}

	if n == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (s *Store) ListSources(ctx context.Context, owner *household.Member) ([]*income.Source, error) {
	query := `SELECT id, owner, name, amount, pay_date, is_primary FROM income_sources`

	var args []any

	if owner != nil {
		query += ` WHERE owner = $1`

		args = append(args, *owner)
	}

	query += ` ORDER BY is_primary DESC, name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errs.Store("listing income sources", err)
	}
	defer rows.Close()

	var list []*income.Source

	for rows.Next() {
		var src income.Source

		var o string

		if err := rows.Scan(&src.ID, &o, &src.Name, &src.Amount, &src.PayDate, &src.Primary); err != nil {
			return nil, errs.Store("scanning income source", err)
		}

		src.Owner = household.Member(o)
		list = append(list, &src)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing income sources", err)
	}

	return list, nil
}

var _ income.Repository = (*Store)(nil)
