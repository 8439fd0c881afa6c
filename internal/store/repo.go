package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/domain"
)

const columnPublished = "published"

type rowScanner interface {
	Scan(dest ...any) error
}

// Repo is the accessor for one entity table. Column order, listing order and
// the set of writable columns all come from the entity's content.Schema.
type Repo[T any] struct {
	st     *Store
	schema *content.Schema
	scan   func(rowScanner) (T, error)
}

func newRepo[T any](st *Store, schema *content.Schema, scan func(rowScanner) (T, error)) *Repo[T] {
	return &Repo[T]{st: st, schema: schema, scan: scan}
}

// ListOptions filters a listing.
type ListOptions struct {
	// PublishedOnly drops unpublished records. Ignored for tables without a
	// published column.
	PublishedOnly bool
}

// Schema returns the entity schema.
func (r *Repo[T]) Schema() *content.Schema { return r.schema }

// List returns every record in listing order.
func (r *Repo[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	return r.query(ctx, "list", r.listQuery(opts))
}

func (r *Repo[T]) listQuery(opts ListOptions) sq.SelectBuilder {
	q := r.st.builder.
		Select(r.schema.Columns()...).
		From(r.schema.Table).
		OrderBy(r.schema.OrderByCollate(r.st.collation)...)
	if opts.PublishedOnly && r.schema.HasColumn(columnPublished) {
		q = q.Where(sq.Eq{columnPublished: true})
	}
	return q
}

func (r *Repo[T]) query(ctx context.Context, op string, q sq.SelectBuilder) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s %s: build query: %w", op, r.schema.Table, err)
	}

	rows, err := r.st.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, op, r.schema.Table, "")
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s %s: scan: %w", op, r.schema.Table, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, op, r.schema.Table, "")
	}
	return out, nil
}

// GetByID returns the record or domain.ErrNotFound.
func (r *Repo[T]) GetByID(ctx context.Context, id string) (T, error) {
	q := r.st.builder.
		Select(r.schema.Columns()...).
		From(r.schema.Table).
		Where(sq.Eq{content.ColumnID: id})
	return r.queryRow(ctx, "get", id, q)
}

// Create inserts body under a new id. Columns missing from body take the
// table default.
func (r *Repo[T]) Create(ctx context.Context, body content.Body) (T, error) {
	id := r.st.newID()
	now := formatTime(r.st.now())

	set := map[string]any{
		content.ColumnID:        id,
		content.ColumnCreatedAt: now,
		content.ColumnUpdatedAt: now,
	}
	r.writable(body, set)

	q := r.st.builder.
		Insert(r.schema.Table).
		SetMap(set).
		Suffix(r.returning())
	return r.queryRow(ctx, "create", id, q)
}

// Update writes only the columns present in body and refreshes updated_at.
// It returns domain.ErrNotFound when id does not exist.
func (r *Repo[T]) Update(ctx context.Context, id string, body content.Body) (T, error) {
	set := map[string]any{
		content.ColumnUpdatedAt: formatTime(r.st.now()),
	}
	r.writable(body, set)

	q := r.st.builder.
		Update(r.schema.Table).
		SetMap(set).
		Where(sq.Eq{content.ColumnID: id}).
		Suffix(r.returning())
	return r.queryRow(ctx, "update", id, q)
}

// Delete removes the record permanently. It returns domain.ErrNotFound when
// id does not exist.
func (r *Repo[T]) Delete(ctx context.Context, id string) error {
	query, args, err := r.st.builder.
		Delete(r.schema.Table).
		Where(sq.Eq{content.ColumnID: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete %s: build query: %w", r.schema.Entity, err)
	}

	res, err := r.st.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "delete", r.schema.Entity, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, "delete", r.schema.Entity, id)
	}
	if n == 0 {
		return fmt.Errorf("delete %s %s: %w", r.schema.Entity, id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of rows in the table.
func (r *Repo[T]) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

func (r *Repo[T]) count(ctx context.Context, where sq.Sqlizer) (int64, error) {
	q := r.st.builder.Select("COUNT(*)").From(r.schema.Table)
	if where != nil {
		q = q.Where(where)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("count %s: build query: %w", r.schema.Table, err)
	}
	var n int64
	if err := r.st.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, mapError(err, "count", r.schema.Table, "")
	}
	return n, nil
}

func (r *Repo[T]) queryRow(ctx context.Context, op, id string, q sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := q.ToSql()
	if err != nil {
		return zero, fmt.Errorf("%s %s: build query: %w", op, r.schema.Entity, err)
	}
	rec, err := r.scan(r.st.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return zero, mapError(err, op, r.schema.Entity, id)
	}
	return rec, nil
}

// writable copies the schema columns of body into set. Anything else a
// caller put in the body is ignored.
func (r *Repo[T]) writable(body content.Body, set map[string]any) {
	for _, f := range r.schema.Fields {
		if v, ok := body[f.Column]; ok {
			set[f.Column] = columnValue(f, v)
		}
	}
}

func (r *Repo[T]) returning() string {
	return "RETURNING " + strings.Join(r.schema.Columns(), ", ")
}
