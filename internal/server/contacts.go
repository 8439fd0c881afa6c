package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/server/middleware"
	"github.com/Zachkp/folio/internal/store"
)

// formAliases maps legacy contact form field names to payload keys.
var formAliases = map[string]string{"fullName": "name"}

// submitContact stores a message from the public form and notifies the
// owner. A failed notification is logged; the message is already saved.
func (s *Server) submitContact(c *gin.Context) {
	raw, good := contactPayload(c)
	if !good {
		return
	}
	body := content.Contacts.NormalizeCreate(raw)
	body["read"] = false

	msg, err := s.store.Contacts.Create(c.Request.Context(), body)
	if err != nil {
		storeFailed(c, s.logger, err, "", "failed to save message")
		return
	}

	if err := s.notifier.ContactReceived(c.Request.Context(), msg); err != nil {
		s.logger.WarnContext(c.Request.Context(), "contact notification failed",
			slog.String("contact_id", msg.ID),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.RequestIDFrom(c)),
		)
	}
	ok(c, msg)
}

// contactPayload accepts a JSON object or a urlencoded/multipart form.
func contactPayload(c *gin.Context) ([]byte, bool) {
	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				fail(c, http.StatusRequestEntityTooLarge, msgTooLarge)
				return nil, false
			}
			fail(c, http.StatusBadRequest, "Invalid form body")
			return nil, false
		}
		fields := make(map[string]string, len(c.Request.PostForm))
		for k, v := range c.Request.PostForm {
			if len(v) == 0 {
				continue
			}
			if alias, found := formAliases[k]; found {
				k = alias
			}
			fields[k] = v[0]
		}
		raw, err := json.Marshal(fields)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid form body")
			return nil, false
		}
		return raw, true
	default:
		return readObject(c)
	}
}

func (s *Server) getContacts(c *gin.Context) {
	ctx := c.Request.Context()
	if id := strings.TrimSpace(c.Query("id")); id != "" {
		msg, err := s.store.Contacts.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			ok(c, nil)
			return
		}
		if err != nil {
			storeFailed(c, s.logger, err, "", "failed to fetch message")
			return
		}
		ok(c, msg)
		return
	}

	msgs, err := s.store.Contacts.List(ctx, store.ListOptions{})
	if err != nil {
		storeFailed(c, s.logger, err, "", "failed to list messages")
		return
	}
	ok(c, msgs)
}

// markContact sets the read flag; a body without "read" marks it read.
func (s *Server) markContact(c *gin.Context) {
	raw, good := readObject(c)
	if !good {
		return
	}
	id := content.ID(raw)
	if id == "" {
		fail(c, http.StatusBadRequest, msgNoID)
		return
	}
	read := true
	if v, present := content.Contacts.NormalizeUpdate(raw)["read"]; present {
		read, _ = v.(bool)
	}

	msg, err := s.store.Contacts.MarkRead(c.Request.Context(), id, read)
	if err != nil {
		storeFailed(c, s.logger, err, "message not found", "failed to update message")
		return
	}
	ok(c, msg)
}

func (s *Server) deleteContact(c *gin.Context) {
	id := targetID(c)
	if id == "" {
		fail(c, http.StatusBadRequest, msgNoID)
		return
	}
	if err := s.store.Contacts.Delete(c.Request.Context(), id); err != nil {
		storeFailed(c, s.logger, err, "message not found", "failed to delete message")
		return
	}
	okEmpty(c)
}
