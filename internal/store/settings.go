package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/domain"
)

// SettingsRepo stores the site settings singleton. The table may hold more
// than one row if callers ever pass a stale id; Get always answers with the
// most recently written one.
type SettingsRepo struct {
	*Repo[domain.SiteSettings]
}

// Get returns the live settings row or domain.ErrNotFound when none exists.
func (r *SettingsRepo) Get(ctx context.Context) (domain.SiteSettings, error) {
	q := r.st.builder.
		Select(r.schema.Columns()...).
		From(r.schema.Table).
		OrderBy(r.schema.OrderByCollate(r.st.collation)...).
		Limit(1)
	return r.queryRow(ctx, "get", "", q)
}

// Upsert updates the row id with patch when id resolves. Otherwise it
// creates a new row from full under a store-generated id.
func (r *SettingsRepo) Upsert(ctx context.Context, id string, patch, full content.Body) (domain.SiteSettings, error) {
	if id != "" {
		rec, err := r.Update(ctx, id, patch)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.SiteSettings{}, err
		}
	}
	rec, err := r.Create(ctx, full)
	if err != nil {
		return domain.SiteSettings{}, fmt.Errorf("upsert: %w", err)
	}
	return rec, nil
}
