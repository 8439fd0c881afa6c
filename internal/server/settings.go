package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/domain"
)

// getSettings returns the live settings, or data:null before the first save.
func (s *Server) getSettings(c *gin.Context) {
	rec, err := s.store.Settings.Get(c.Request.Context())
	if errors.Is(err, domain.ErrNotFound) {
		ok(c, nil)
		return
	}
	if err != nil {
		storeFailed(c, s.logger, err, "", "failed to fetch settings")
		return
	}
	ok(c, rec)
}

// saveSettings upserts: a body id that resolves is updated with the
// supplied fields, anything else creates a row.
func (s *Server) saveSettings(c *gin.Context) {
	raw, good := readObject(c)
	if !good {
		return
	}
	schema := content.Settings
	rec, err := s.store.Settings.Upsert(c.Request.Context(), content.ID(raw),
		schema.NormalizeUpdate(raw), schema.NormalizeCreate(raw))
	if err != nil {
		storeFailed(c, s.logger, err, "", "failed to save settings")
		return
	}
	ok(c, rec)
}
