package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*auth.User, error) {
	var (
		u      auth.User
		member string
	)

	if err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &member, &u.CreatedAt); err != nil {
		return nil, err
	}

	u.Member = household.Member(member)

	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *auth.User) error {
	query := `
		INSERT INTO users (email, password_hash, member)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Member).Scan(&u.ID, &u.CreatedAt); err != nil {
		return errs.Store("creating user", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	query := `SELECT id, email, password_hash, member, created_at FROM users WHERE id = $1`

	return s.get(ctx, "getting user", query, id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `SELECT id, email, password_hash, member, created_at FROM users WHERE email = $1`

	return s.get(ctx, "getting user by email", query, email)
}

func (s *Store) get(ctx context.Context, op, query string, arg any) (*auth.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, errs.Store(op, err)
	}

	return u, nil
}

var _ auth.Repository = (*Store)(nil)
