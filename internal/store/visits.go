package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Zachkp/folio/internal/domain"
)

const (
	visitsTable     = "visits"
	recentVisitsMax = 50
)

// VisitsRepo stores privacy-preserving page view metrics.
type VisitsRepo struct {
	st *Store
}

// Record stores one page view. hashedIP must already be hashed.
func (r *VisitsRepo) Record(ctx context.Context, hashedIP, userAgent, path string) (domain.Visit, error) {
	v := domain.Visit{
		ID:        r.st.newID(),
		HashedIP:  hashedIP,
		UserAgent: userAgent,
		Path:      path,
		VisitedAt: r.st.now().UTC(),
	}
	query, args, err := r.st.builder.
		Insert(visitsTable).
		Columns("id", "hashed_ip", "user_agent", "path", "visited_at").
		Values(v.ID, v.HashedIP, v.UserAgent, v.Path, formatTime(v.VisitedAt)).
		ToSql()
	if err != nil {
		return domain.Visit{}, fmt.Errorf("record visit: build query: %w", err)
	}
	if _, err := r.st.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Visit{}, mapError(err, "record", "visit", v.ID)
	}
	return v, nil
}

// Stats summarizes recorded visits relative to the store clock: "today" is
// the current UTC day, "this week" the trailing seven days.
func (r *VisitsRepo) Stats(ctx context.Context) (domain.VisitorStats, error) {
	now := r.st.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	var stats domain.VisitorStats
	counts := []struct {
		dest  *int64
		query sq.SelectBuilder
	}{
		{&stats.TotalVisits, r.st.builder.Select("COUNT(*)").From(visitsTable)},
		{&stats.UniqueVisitors, r.st.builder.Select("COUNT(DISTINCT hashed_ip)").From(visitsTable)},
		{&stats.VisitsToday, r.st.builder.Select("COUNT(*)").From(visitsTable).
			Where(sq.GtOrEq{"visited_at": formatTime(today)})},
		{&stats.VisitsThisWeek, r.st.builder.Select("COUNT(*)").From(visitsTable).
			Where(sq.GtOrEq{"visited_at": formatTime(weekAgo)})},
	}
	for _, c := range counts {
		query, args, err := c.query.ToSql()
		if err != nil {
			return domain.VisitorStats{}, fmt.Errorf("visit stats: build query: %w", err)
		}
		if err := r.st.db.QueryRowContext(ctx, query, args...).Scan(c.dest); err != nil {
			return domain.VisitorStats{}, mapError(err, "stats", "visit", "")
		}
	}

	recent, err := r.Recent(ctx, recentVisitsMax)
	if err != nil {
		return domain.VisitorStats{}, err
	}
	stats.RecentVisits = recent
	return stats, nil
}

// Recent returns up to limit visits, newest first.
func (r *VisitsRepo) Recent(ctx context.Context, limit uint64) ([]domain.Visit, error) {
	query, args, err := r.st.builder.
		Select("id", "hashed_ip", "user_agent", "path", "visited_at").
		From(visitsTable).
		OrderBy("visited_at DESC", "id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("recent visits: build query: %w", err)
	}

	rows, err := r.st.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list", "visit", "")
	}
	defer rows.Close()

	out := []domain.Visit{}
	for rows.Next() {
		var (
			v  domain.Visit
			at dbTime
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, fmt.Errorf("recent visits: scan: %w", err)
		}
		v.VisitedAt = at.Time
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list", "visit", "")
	}
	return out, nil
}

// PurgeBefore deletes visits older than cutoff and returns how many were
// removed.
func (r *VisitsRepo) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := r.st.builder.
		Delete(visitsTable).
		Where(sq.Lt{"visited_at": formatTime(cutoff)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("purge visits: build query: %w", err)
	}
	res, err := r.st.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "purge", "visit", "")
	}
	return res.RowsAffected()
}
