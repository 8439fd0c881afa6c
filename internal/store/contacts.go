package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/domain"
)

// ContactsRepo stores contact form messages.
type ContactsRepo struct {
	*Repo[domain.Contact]
}

// MarkRead sets the read flag. It returns domain.ErrNotFound when id does
// not exist.
func (r *ContactsRepo) MarkRead(ctx context.Context, id string, read bool) (domain.Contact, error) {
	return r.Update(ctx, id, content.Body{"read": read})
}

// CountUnread returns the number of unread messages.
func (r *ContactsRepo) CountUnread(ctx context.Context) (int64, error) {
	return r.count(ctx, sq.Eq{"read": false})
}
