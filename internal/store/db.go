// Package store is the only component that talks to the database. It holds
// one repository per entity type over a shared *sql.DB, with queries built by
// squirrel in the placeholder format of the configured engine.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" driver for database/sql
	_ "modernc.org/sqlite"             // "sqlite" driver

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/domain"
)

const memoryDSN = ":memory:"

// Store bundles the repositories.
type Store struct {
	db        *sql.DB
	driver    string
	builder   sq.StatementBuilderType
	collation string // applied to text sort keys; empty keeps the engine default
	now       func() time.Time
	newID     func() string

	Projects     *Repo[domain.Project]
	Experiences  *Repo[domain.Experience]
	Skills       *Repo[domain.Skill]
	Certificates *Repo[domain.Certificate]
	Settings     *SettingsRepo
	Contacts     *ContactsRepo
	Visits       *VisitsRepo
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces the clock used for created_at, updated_at and visit
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the record id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// Open connects to the configured engine and pings it. It does not migrate;
// call Migrate for that.
func Open(ctx context.Context, cfg config.DatabaseConfig, opts ...Option) (*Store, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite, "":
		db, err = openSQLite(cfg.DSN)
	case config.DriverPostgres:
		db, err = sql.Open("pgx", cfg.DSN)
		if err == nil && cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
			db.SetMaxIdleConns(cfg.MaxOpenConns)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverSQLite
	}
	return New(db, driver, opts...), nil
}

// New wraps an already opened database.
func New(db *sql.DB, driver string, opts ...Option) *Store {
	s := &Store{
		db:     db,
		driver: driver,
		now:    time.Now,
		newID:  newID,
	}
	var format sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		format = sq.Dollar
		s.collation = `"C"`
	}
	s.builder = sq.StatementBuilder.PlaceholderFormat(format)
	for _, opt := range opts {
		opt(s)
	}

	s.Projects = newRepo(s, content.Projects, scanProject)
	s.Experiences = newRepo(s, content.Experiences, scanExperience)
	s.Skills = newRepo(s, content.Skills, scanSkill)
	s.Certificates = newRepo(s, content.Certificates, scanCertificate)
	s.Settings = &SettingsRepo{newRepo(s, content.Settings, scanSettings)}
	s.Contacts = &ContactsRepo{newRepo(s, content.Contacts, scanContact)}
	s.Visits = &VisitsRepo{st: s}
	return s
}

func openSQLite(dsn string) (*sql.DB, error) {
	if dsn != memoryDSN && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: SQLite serializes writers anyway, and every pooled
	// connection to ":memory:" would see its own empty database.
	db.SetMaxOpenConns(1)
	return db, nil
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

// Driver returns the configured engine name.
func (s *Store) Driver() string { return s.driver }

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
