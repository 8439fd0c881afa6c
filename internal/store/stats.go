package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zachkp/folio/internal/domain"
)

// Counts returns the row count of every content table keyed by table name.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counters := []interface {
		Count(context.Context) (int64, error)
	}{s.Projects, s.Experiences, s.Skills, s.Certificates, s.Contacts}
	tables := []string{
		s.Projects.schema.Table,
		s.Experiences.schema.Table,
		s.Skills.schema.Table,
		s.Certificates.schema.Table,
		s.Contacts.schema.Table,
	}

	out := make(map[string]int64, len(tables))
	for i, c := range counters {
		n, err := c.Count(ctx)
		if err != nil {
			return nil, err
		}
		out[tables[i]] = n
	}
	return out, nil
}

// AdminStats gathers the dashboard numbers.
func (s *Store) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	counts, err := s.Counts(ctx)
	if err != nil {
		return domain.AdminStats{}, err
	}
	unread, err := s.Contacts.CountUnread(ctx)
	if err != nil {
		return domain.AdminStats{}, err
	}
	visitors, err := s.Visits.Stats(ctx)
	if err != nil {
		return domain.AdminStats{}, err
	}
	return domain.AdminStats{
		Collections:    counts,
		UnreadContacts: unread,
		Visitors:       visitors,
	}, nil
}

// Export snapshots all content, unpublished records included.
func (s *Store) Export(ctx context.Context) (domain.Export, error) {
	var (
		out domain.Export
		err error
	)
	out.ExportedAt = s.now().UTC()

	settings, err := s.Settings.Get(ctx)
	switch {
	case err == nil:
		out.Settings = &settings
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Export{}, fmt.Errorf("export: %w", err)
	}

	all := ListOptions{}
	if out.Projects, err = s.Projects.List(ctx, all); err != nil {
		return domain.Export{}, fmt.Errorf("export: %w", err)
	}
	if out.Experiences, err = s.Experiences.List(ctx, all); err != nil {
		return domain.Export{}, fmt.Errorf("export: %w", err)
	}
	if out.Skills, err = s.Skills.List(ctx, all); err != nil {
		return domain.Export{}, fmt.Errorf("export: %w", err)
	}
	if out.Certificates, err = s.Certificates.List(ctx, all); err != nil {
		return domain.Export{}, fmt.Errorf("export: %w", err)
	}
	if out.Contacts, err = s.Contacts.List(ctx, all); err != nil {
		return domain.Export{}, fmt.Errorf("export: %w", err)
	}
	return out, nil
}
