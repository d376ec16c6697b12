package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "employees")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 5, cfg.Database.MaxRetries)
	assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
	assert.False(t, cfg.RunMigrations)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "employees")
	t.Setenv("IDEMPOTENCY_TTL", "1h")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("OUTBOX_BATCH_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, 2.5, cfg.RateLimitPerSecond)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, 50, cfg.OutboxBatchSize, "invalid values fall back to the default")
}

func TestValidate_MissingDatabaseSettings(t *testing.T) {
	cfg := Load()
	cfg.Database.User = ""

	err := cfg.Validate()

	assert.EqualError(t, err, "DB_USER is required")
}

func TestDatabaseConfig_DSNAndURL(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "app", Password: "p@ss", Name: "employees", SSLMode: "disable"}

	assert.Equal(t, "host=db user=app password=p@ss dbname=employees port=5432 sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://app:p%40ss@db:5432/employees?sslmode=disable", d.URL())
}
