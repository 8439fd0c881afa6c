package config

import (
	"fmt"
	"strings"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Validate checks rules the struct tags cannot express. Load calls it.
func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverSQLite, DriverPostgres, c.Database.Driver)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if err := c.Admin.validate(); err != nil {
		return fmt.Errorf("admin: %w", err)
	}

	if c.Analytics.RetentionDays < 0 {
		return fmt.Errorf("analytics.retention_days must be >= 0 (got %d)", c.Analytics.RetentionDays)
	}
	if c.RateLimit.LoginPerMinute <= 0 || c.RateLimit.ContactPerMinute <= 0 {
		return fmt.Errorf("rate_limit values must be > 0")
	}

	return nil
}

func (a *AdminConfig) validate() error {
	if a.JWTSecret != "" && len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	if a.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be > 0")
	}
	if !a.RequireAuth {
		return nil
	}
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("email is required when require_auth is set")
	}
	if a.Password == "" && a.PasswordHash == "" {
		return fmt.Errorf("password or password_hash is required when require_auth is set")
	}
	return nil
}
