package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/store"
)

const (
	msgNoID        = "No ID provided"
	msgInvalidJSON = "Invalid JSON body"
	msgTooLarge    = "Request body too large"
)

type recordRepo[T any] interface {
	Schema() *content.Schema
	List(ctx context.Context, opts store.ListOptions) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, body content.Body) (T, error)
	Update(ctx context.Context, id string, body content.Body) (T, error)
	Delete(ctx context.Context, id string) error
}

// collection serves the CRUD endpoints of one entity type:
// parse, normalize, store, serialize.
type collection[T any] struct {
	repo   recordRepo[T]
	logger *slog.Logger
}

func registerCollection[T any](g *gin.RouterGroup, path string, repo recordRepo[T], admin gin.HandlerFunc, logger *slog.Logger) {
	h := &collection[T]{
		repo:   repo,
		logger: logger.With(slog.String("component", repo.Schema().Table)),
	}
	g.GET(path, h.get)
	g.POST(path, admin, h.create)
	g.PUT(path, admin, h.update)
	g.PATCH(path, admin, h.update)
	g.DELETE(path, admin, h.remove)
}

// get lists records, or fetches one when ?id= is given. A missing record
// answers data:null, not an error.
func (h *collection[T]) get(c *gin.Context) {
	entity := h.repo.Schema().Entity
	ctx := c.Request.Context()

	if id := strings.TrimSpace(c.Query("id")); id != "" {
		rec, err := h.repo.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			ok(c, nil)
			return
		}
		if err != nil {
			storeFailed(c, h.logger, err, entity+" not found", "failed to fetch "+entity)
			return
		}
		ok(c, rec)
		return
	}

	records, err := h.repo.List(ctx, store.ListOptions{PublishedOnly: queryFlag(c, "published")})
	if err != nil {
		storeFailed(c, h.logger, err, "", "failed to list "+h.repo.Schema().Table)
		return
	}
	ok(c, records)
}

func (h *collection[T]) create(c *gin.Context) {
	raw, good := readObject(c)
	if !good {
		return
	}
	rec, err := h.repo.Create(c.Request.Context(), h.repo.Schema().NormalizeCreate(raw))
	if err != nil {
		storeFailed(c, h.logger, err, "", "failed to create "+h.repo.Schema().Entity)
		return
	}
	ok(c, rec)
}

// update applies a partial update keyed by the body's id. Without an id
// nothing is written.
func (h *collection[T]) update(c *gin.Context) {
	entity := h.repo.Schema().Entity
	raw, good := readObject(c)
	if !good {
		return
	}
	id := content.ID(raw)
	if id == "" {
		fail(c, http.StatusBadRequest, msgNoID)
		return
	}
	rec, err := h.repo.Update(c.Request.Context(), id, h.repo.Schema().NormalizeUpdate(raw))
	if err != nil {
		storeFailed(c, h.logger, err, entity+" not found", "failed to update "+entity)
		return
	}
	ok(c, rec)
}

// remove deletes by ?id=, falling back to an id in the JSON body.
func (h *collection[T]) remove(c *gin.Context) {
	entity := h.repo.Schema().Entity
	id := targetID(c)
	if id == "" {
		fail(c, http.StatusBadRequest, msgNoID)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		storeFailed(c, h.logger, err, entity+" not found", "failed to delete "+entity)
		return
	}
	okEmpty(c)
}

// readObject reads the body and requires a JSON object. On failure it has
// already answered.
func readObject(c *gin.Context) ([]byte, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, http.StatusRequestEntityTooLarge, msgTooLarge)
			return nil, false
		}
		fail(c, http.StatusBadRequest, msgInvalidJSON)
		return nil, false
	}
	if !content.ValidObject(raw) {
		fail(c, http.StatusBadRequest, msgInvalidJSON)
		return nil, false
	}
	return raw, true
}

func targetID(c *gin.Context) string {
	if id := strings.TrimSpace(c.Query("id")); id != "" {
		return id
	}
	raw, err := c.GetRawData()
	if err != nil || !content.ValidObject(raw) {
		return ""
	}
	return content.ID(raw)
}

func queryFlag(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}
