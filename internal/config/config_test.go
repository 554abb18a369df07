package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testConfig = `
server:
  port: 5000
database:
  host: localhost
  port: 5432
  user: restaurant
  password: secret
  database: restaurant
redis:
  host: localhost
  port: 6379
  ttl_seconds: 120
rabbitmq:
  host: localhost
  port: 5672
  user: guest
  password: guest
auth:
  jwt_secret: test-secret
  token_ttl_hours: 12
  bcrypt_rounds: 10
orders:
  tax_rate: "0.18"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "restaurant", cfg.Database.Database)
	assert.Equal(t, 120, cfg.Redis.TTLSeconds)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "0.18", cfg.Orders.TaxRate)
	assert.Equal(t, "0.18", cfg.Orders.TaxRateDecimal().String())
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	content := `
auth:
  jwt_secret: ""
`
	_, err := Load(writeConfig(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "env-db-pass")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "env-db-pass", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "0.18", OrdersConfig{TaxRate: "garbage"}.TaxRateDecimal().String())
	assert.Equal(t, "1m0s", RedisConfig{}.TTL().String())
	assert.Equal(t, "24h0m0s", AuthConfig{}.TokenTTL().String())
}
