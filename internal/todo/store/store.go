package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
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

func scanTodo(s scanner) (*todo.Todo, error) {
	var t todo.Todo

	var owner string

	if err := s.Scan(&t.ID, &owner, &t.Text, &t.Done, &t.Due, &t.Position); err != nil {
		return nil, err
	}

	t.Owner = household.Member(owner)

	return &t, nil
}

func (s *Store) CreateTodo(ctx context.Context, t *todo.Todo) error {
	query := `
		INSERT INTO todos (owner, text, done, due, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, t.Owner, t.Text, t.Done, t.Due, t.Position).Scan(&t.ID); err != nil {
		return errs.Store("creating todo", err)
	}

	return nil
}

func (s *Store) GetTodo(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	query := `SELECT id, owner, text, done, due, position FROM todos WHERE id = $1`

	t, err := scanTodo(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, errs.Store("getting todo", err)
	}

	return t, nil
}

func (s *Store) UpdateTodo(ctx context.Context, t *todo.Todo) error {
	query := `UPDATE todos SET text = $1, done = $2, due = $3, position = $4 WHERE id = $5`

	res, err := s.db.ExecContext(ctx, query, t.Text, t.Done, t.Due, t.Position, t.ID)
	if err != nil {
		return errs.Store("updating todo", err)
	}

	return checkAffected(res, "updating todo")
}

func (s *Store) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return errs.Store("deleting todo", err)
	}

	return checkAffected(res, "deleting todo")
}

func (s *Store) ListTodos(ctx context.Context, owner household.Member) ([]*todo.Todo, error) {
	query := `SELECT id, owner, text, done, due, position FROM todos WHERE owner = $1 ORDER BY position ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, errs.Store("listing todos", err)
	}
	defer rows.Close()

	var list []*todo.Todo

	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, errs.Store("scanning todo", err)
		}

		list = append(list, t)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("listing todos", err)
	}

	return list, nil
}

func (s *Store) SwapPositions(ctx context.Context, a, b *todo.Todo) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Store("beginning swap", err)
	}
	defer tx.Rollback()

	query := `UPDATE todos SET position = $1 WHERE id = $2`

	if _, err := tx.ExecContext(ctx, query, b.Position, a.ID); err != nil {
		return errs.Store("swapping todo positions", err)
	}

	if _, err := tx.ExecContext(ctx, query, a.Position, b.ID); err != nil {
		return errs.Store("swapping todo positions", err)
	}

	if err := tx.Commit(); err != nil {
		return errs.Store("committing swap", err)
	}

	return nil
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

var _ todo.Repository = (*Store)(nil)
