// Package localstate is the per-device key/value store: the signed-in member, their preferences,
// revoked session ids and snapshots of data recorded before the member had an account.
package localstate

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

// Store is a persistent string map. Get returns errs.ErrNotFound for a missing or expired key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key. A zero ttl keeps the key until it is deleted.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Keys lists the live keys starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

type Options struct {
	Backend    Backend
	SQLitePath string
	RedisAddr  string
}

// Open returns the store selected by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendSQLite:
		return OpenSQLite(ctx, opts.SQLitePath)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisAddr)
	default:
		return nil, fmt.Errorf("unsupported local state backend: %q", opts.Backend)
	}
}

const (
	CurrentMemberKey = "current_member"
	preferencesKey   = "preferences:"
	snapshotKey      = "snapshot:"
	revokedKey       = "revoked:"
)

func PreferencesKey(m household.Member) string {
	return preferencesKey + string(m)
}

// SnapshotPrefix is the prefix of every snapshot key of m.
func SnapshotPrefix(m household.Member) string {
	return snapshotKey + string(m) + ":"
}

func SnapshotKey(m household.Member, entity Entity) string {
	return SnapshotPrefix(m) + string(entity)
}

func RevokedKey(jti string) string {
	return revokedKey + jti
}
