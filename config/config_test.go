package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAILS", " Owner@Cafe.com, ,barista@cafe.com ")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "INR", cfg.PaymentCurrency)
	assert.Equal(t, 50, cfg.BroadcastBatchSize)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL())
	assert.Equal(t, []string{"owner@cafe.com", "barista@cafe.com"}, cfg.AdminEmailList())
	assert.Equal(t, []string{"*"}, cfg.CORSOriginList())
	assert.False(t, cfg.IsProduction())
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load("does-not-exist.env")
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Configuration{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "cafe"}
	assert.Equal(t, "host=db user=u password=p dbname=cafe port=5432 sslmode=disable", cfg.PostgresDSN())

	cfg.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", cfg.PostgresDSN())
}
