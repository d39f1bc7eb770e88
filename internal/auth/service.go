package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/localstate"
)

const minPasswordLength = 8

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// Revocations remembers signed-out token ids until the token would have expired anyway.
type Revocations interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type Service struct {
	repo      Repository
	tokens    *Tokens
	revoked   Revocations
	household *household.Household
}

func NewService(repo Repository, tokens *Tokens, revoked Revocations, hh *household.Household) *Service {
	return &Service{repo: repo, tokens: tokens, revoked: revoked, household: hh}
}

// SignUp registers a login for a household member and signs them in.
func (s *Service) SignUp(ctx context.Context, email, password string, member household.Member) (*Session, error) {
	email = normalizeEmail(email)

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errs.Invalid("email", "must be a valid address")
	}

	if len(password) < minPasswordLength {
		return nil, errs.Invalid("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	if !s.household.Contains(member) {
		return nil, errs.Invalid("member", fmt.Sprintf("%q is not a household member", member))
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s: %w", email, errs.ErrConflict)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{Email: email, PasswordHash: string(hash), Member: member}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return s.session(u)
}

// SignIn exchanges credentials for a session. Unknown emails and wrong passwords look the same.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrUnauthenticated
	}

	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errs.ErrUnauthenticated
	}

	return s.session(u)
}

// SignOut revokes token. Signing out with an already invalid token succeeds.
func (s *Service) SignOut(ctx context.Context, token string) error {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(id.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.revoked.Set(ctx, localstate.RevokedKey(id.TokenID), "1", ttl); err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}

	return nil
}

// CurrentUser resolves token to its holder, rejecting revoked tokens and members no longer in the household.
func (s *Service) CurrentUser(ctx context.Context, token string) (Identity, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return Identity{}, err
	}

	_, err = s.revoked.Get(ctx, localstate.RevokedKey(id.TokenID))
	if err == nil {
		return Identity{}, fmt.Errorf("%w: session signed out", errs.ErrUnauthenticated)
	}

	if !errors.Is(err, errs.ErrNotFound) {
		slog.Error("failed to check token revocation", "error", err)
		return Identity{}, err
	}

	if !s.household.Contains(id.Member) {
		return Identity{}, fmt.Errorf("%w: %s is not a household member", errs.ErrUnauthenticated, id.Member)
	}

	return id, nil
}

func (s *Service) session(u *User) (*Session, error) {
	token, id, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: u, ExpiresAt: id.ExpiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) User(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}
