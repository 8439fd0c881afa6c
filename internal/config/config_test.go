package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: SQLite
  dsn: /tmp/folio.db
admin:
  email: owner@example.com
  password: hunter2
log:
  level: debug
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/folio.db", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 24*time.Hour, cfg.Admin.TokenTTL)
	assert.True(t, cfg.Admin.RequireAuth)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ADMIN_REQUIRE_AUTH", "false")
	t.Setenv("DATABASE_DSN", ":memory:")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Admin.RequireAuth)
}

func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: 8080, MaxBodyBytes: 1 << 20},
		Database:  DatabaseConfig{Driver: "sqlite", DSN: ":memory:"},
		Admin:     AdminConfig{Email: "o@example.com", Password: "pw", TokenTTL: time.Hour, RequireAuth: true},
		Analytics: AnalyticsConfig{RetentionDays: 30},
		RateLimit: RateLimitConfig{LoginPerMinute: 5, ContactPerMinute: 5},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"postgres", func(c *Config) { c.Database.Driver = " Postgres " }, ""},
		{"bad driver", func(c *Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"empty dsn", func(c *Config) { c.Database.DSN = " " }, "database.dsn"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "max_body_bytes"},
		{"short secret", func(c *Config) { c.Admin.JWTSecret = "short" }, "jwt_secret"},
		{"no email", func(c *Config) { c.Admin.Email = "" }, "email"},
		{"no password", func(c *Config) { c.Admin.Password = "" }, "password"},
		{"hash only", func(c *Config) { c.Admin.Password, c.Admin.PasswordHash = "", "$2a$10$x" }, ""},
		{"auth off", func(c *Config) { c.Admin = AdminConfig{TokenTTL: time.Hour} }, ""},
		{"zero ttl", func(c *Config) { c.Admin.TokenTTL = 0 }, "token_ttl"},
		{"negative retention", func(c *Config) { c.Analytics.RetentionDays = -1 }, "retention_days"},
		{"rate limit", func(c *Config) { c.RateLimit.ContactPerMinute = 0 }, "rate_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), err.Error())
		})
	}
}

func TestValidate_NormalizesDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = " Postgres "
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
}
