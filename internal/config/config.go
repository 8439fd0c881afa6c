package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Admin     AdminConfig     `yaml:"admin"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Web       WebConfig       `yaml:"web"`
}

// ServerConfig holds HTTP server settings. PORT keeps the name hosting
// platforms inject.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8080"`
	Mode            string        `yaml:"mode"             env:"GIN_MODE"                env-default:"release"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig selects the store engine. Driver is "sqlite" (DSN is a file
// path or ":memory:") or "postgres" (DSN is a connection URL).
type DatabaseConfig struct {
	Driver       string `yaml:"driver"         env:"DATABASE_DRIVER"         env-default:"sqlite"`
	DSN          string `yaml:"dsn"            env:"DATABASE_DSN"            env-default:"data/portfolio.db"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS" env-default:"10"`
	AutoMigrate  bool   `yaml:"auto_migrate"   env:"DATABASE_AUTO_MIGRATE"   env-default:"true"`
}

// AdminConfig holds the site owner's credentials and session settings.
// PasswordHash (bcrypt) takes precedence over Password.
type AdminConfig struct {
	Email        string        `yaml:"email"         env:"ADMIN_EMAIL"`
	Password     string        `yaml:"password"      env:"ADMIN_PASSWORD"`
	PasswordHash string        `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
	JWTSecret    string        `yaml:"jwt_secret"    env:"ADMIN_JWT_SECRET"`
	JWTIssuer    string        `yaml:"jwt_issuer"    env:"ADMIN_JWT_ISSUER"    env-default:"folio"`
	TokenTTL     time.Duration `yaml:"token_ttl"     env:"ADMIN_TOKEN_TTL"     env-default:"24h"`
	RequireAuth  bool          `yaml:"require_auth"  env:"ADMIN_REQUIRE_AUTH"  env-default:"true"`
	SecureCookie bool          `yaml:"secure_cookie" env:"ADMIN_SECURE_COOKIE" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:""`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// SMTPConfig configures contact notifications. Notifications are sent only
// when User and Password are set.
type SMTPConfig struct {
	Host     string `yaml:"host"     env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	Port     int    `yaml:"port"     env:"SMTP_PORT" env-default:"587"`
	User     string `yaml:"user"     env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASS"`
	To       string `yaml:"to"       env:"TO_EMAIL"`
}

// Enabled reports whether SMTP credentials are configured.
func (c SMTPConfig) Enabled() bool {
	return c.User != "" && c.Password != ""
}

// AnalyticsConfig controls visitor tracking on the public page.
type AnalyticsConfig struct {
	Enabled       bool   `yaml:"enabled"        env:"ANALYTICS_ENABLED"        env-default:"true"`
	Salt          string `yaml:"salt"           env:"ANALYTICS_SALT"`
	RetentionDays int    `yaml:"retention_days" env:"ANALYTICS_RETENTION_DAYS" env-default:"365"`
}

// RateLimitConfig holds per-IP request budgets for public write endpoints.
type RateLimitConfig struct {
	LoginPerMinute   int `yaml:"login_per_minute"   env:"RATE_LIMIT_LOGIN"   env-default:"10"`
	ContactPerMinute int `yaml:"contact_per_minute" env:"RATE_LIMIT_CONTACT" env-default:"5"`
}

// WebConfig holds public page settings.
type WebConfig struct {
	StaticDir string `yaml:"static_dir" env:"STATIC_DIR"`
}
