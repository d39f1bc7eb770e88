package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

const issuer = "buxfer"

type claims struct {
	Email  string `json:"email"`
	Member string `json:"member"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies HS256 session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for u with a fresh token id.
func (t *Tokens) Issue(u *User) (string, Identity, error) {
	now := t.now()
	id := Identity{
		UserID:    u.ID,
		Email:     u.Email,
		Member:    u.Member,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(t.ttl).Truncate(time.Second),
	}

	c := &claims{
		Email:  u.Email,
		Member: string(u.Member),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.TokenID,
			Issuer:    issuer,
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(id.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
	if err != nil {
		return "", Identity{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, id, nil
}

// Verify checks signature, issuer and expiry. Any failure is errs.ErrUnauthenticated.
func (t *Tokens) Verify(token string) (Identity, error) {
	var c claims

	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", errs.ErrUnauthenticated, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil || c.ID == "" {
		return Identity{}, fmt.Errorf("%w: malformed claims", errs.ErrUnauthenticated)
	}

	return Identity{
		UserID:    userID,
		Email:     c.Email,
		Member:    household.Member(c.Member),
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
