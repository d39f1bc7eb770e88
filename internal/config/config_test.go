package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/buxfer/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, []string{"ray", "amber"}, cfg.Household.Members)
	assert.Equal(t, []string{"ray"}, cfg.Household.DebtViewers)
	assert.Equal(t, "Other", cfg.Categories.Default)
	assert.Equal(t, "first", cfg.Categories.Match)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "postgres://postgres:@localhost:5432/buxfer?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_EmptySecret(t *testing.T) {
	for _, secret := range []string{"", "   "} {
		t.Setenv("AUTH_SECRET", secret)

		_, err := config.Load()
		assert.ErrorContains(t, err, "AUTH_SECRET")
	}
}

func TestLoad_InvalidMatchPolicy(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("CATEGORY_MATCH", "random")

	_, err := config.Load()
	assert.ErrorContains(t, err, "CATEGORY_MATCH")
}

func TestLoad_CustomHousehold(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("HOUSEHOLD_MEMBERS", "alex,sam,jo")
	t.Setenv("LOCAL_STATE_BACKEND", "redis")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"alex", "sam", "jo"}, cfg.Household.Members)
	assert.Equal(t, "redis", cfg.LocalState.Backend)
}
