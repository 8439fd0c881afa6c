// Package storetest provides a migrated in-memory store for tests.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/store"
)

// NewDB opens an in-memory SQLite store with all migrations applied. The
// store is closed when the test completes.
func NewDB(t testing.TB, opts ...store.Option) *store.Store {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    ":memory:",
	}, opts...)
	if err != nil {
		t.Fatalf("storetest: open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if _, err := st.Migrate(ctx); err != nil {
		t.Fatalf("storetest: migrate: %v", err)
	}
	return st
}

// Clock is a manual clock. Each call to Now advances it by Step so records
// created in sequence get strictly increasing timestamps.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

// NewClock starts a clock at start advancing one second per reading.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start, Step: time.Second}
}

// Now returns the current reading and advances the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
