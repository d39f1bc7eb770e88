// Package auth registers household members and issues the signed session tokens the API accepts.
package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Member       household.Member
	CreatedAt    time.Time
}

// Session is a signed-in user and the bearer token proving it.
type Session struct {
	Token     string
	User      *User
	ExpiresAt time.Time
}

// Identity is what a valid token says about its holder.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Member    household.Member
	TokenID   string
	ExpiresAt time.Time
}
