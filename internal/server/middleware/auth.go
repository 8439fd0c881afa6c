package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/auth"
)

// CookieSession carries the admin token for browser clients.
const CookieSession = "admin_token"

type tokenValidator interface {
	Validate(token string) (auth.Session, error)
}

// AdminAuth requires a valid session token, read from the admin_token
// cookie or an Authorization: Bearer header. When required is false every
// request passes (local development only).
func AdminAuth(validator tokenValidator, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !required {
			c.Next()
			return
		}
		token := SessionToken(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		sess, err := validator.Validate(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired session")
			return
		}
		c.Set(KeySession, sess)
		c.Next()
	}
}

// SessionToken extracts the bearer token or session cookie, preferring the
// header.
func SessionToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	token, err := c.Cookie(CookieSession)
	if err != nil {
		return ""
	}
	return token
}

// SessionFrom returns the session set by AdminAuth.
func SessionFrom(c *gin.Context) (auth.Session, bool) {
	v, ok := c.Get(KeySession)
	if !ok {
		return auth.Session{}, false
	}
	sess, ok := v.(auth.Session)
	return sess, ok
}
