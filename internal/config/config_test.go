package config_test

import (
	"testing"

	"deck/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBase(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GO_ENV", "dev")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/deck")
	t.Setenv("TIME_ZONE", "")
	t.Setenv("CURRENCY_SYMBOL", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBase(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.False(t, cfg.IsProd())
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	setBase(t)
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.EqualError(t, err, "JWT_SECRET is required")
}

// DATABASE_URLが無ければPOSTGRES_*が必須
func TestLoad_PostgresFields(t *testing.T) {
	setBase(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_USER", "")

	_, err := config.Load()
	assert.EqualError(t, err, "POSTGRES_USER is required")

	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "deck")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "abc")
	_, err = config.Load()
	assert.ErrorContains(t, err, "POSTGRES_PORT must be number")

	t.Setenv("POSTGRES_PORT", "")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.PostgresPort)
}

func TestLoad_TimeZone(t *testing.T) {
	setBase(t)
	t.Setenv("TIME_ZONE", "Not/AZone")

	_, err := config.Load()
	assert.ErrorContains(t, err, "TIME_ZONE is invalid")
}
