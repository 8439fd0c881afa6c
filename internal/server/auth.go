package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/server/middleware"
)

type loginRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

// login checks the owner's credentials and starts a session: the token is
// set as an HttpOnly cookie and returned for API clients.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid login request")
		return
	}

	clientHash := middleware.HashIP(c.ClientIP(), s.cfg.Analytics.Salt)
	if err := s.creds.Verify(req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.logger.WarnContext(c.Request.Context(), "failed admin login", slog.String("client", clientHash))
			fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		fail(c, http.StatusInternalServerError, "login failed")
		return
	}

	token, sess, err := s.jwt.Issue(req.Email)
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "issue session token", slog.String("error", err.Error()))
		fail(c, http.StatusInternalServerError, "login failed")
		return
	}

	s.setSessionCookie(c, token, int(s.jwt.TTL().Seconds()))
	s.logger.InfoContext(c.Request.Context(), "admin login", slog.String("client", clientHash))
	ok(c, gin.H{
		"token":     token,
		"subject":   sess.Subject,
		"expiresAt": sess.ExpiresAt,
	})
}

func (s *Server) logout(c *gin.Context) {
	s.setSessionCookie(c, "", -1)
	okEmpty(c)
}

// session reports the caller's session. With auth disabled every caller is
// the owner.
func (s *Server) session(c *gin.Context) {
	sess, found := middleware.SessionFrom(c)
	if !found {
		ok(c, gin.H{"authenticated": true, "authRequired": false})
		return
	}
	ok(c, gin.H{
		"authenticated": true,
		"authRequired":  true,
		"subject":       sess.Subject,
		"expiresAt":     sess.ExpiresAt,
	})
}

func (s *Server) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieSession, value, maxAge, "/", "", s.cfg.Admin.SecureCookie, true)
}
