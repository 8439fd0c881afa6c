package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/domain"
)

// Credentials is the single owner account.
type Credentials struct {
	email        string
	password     string
	passwordHash []byte
}

// NewCredentials reads the owner account from config. A bcrypt hash wins
// over a plain password.
func NewCredentials(cfg config.AdminConfig) *Credentials {
	c := &Credentials{
		email:    strings.TrimSpace(cfg.Email),
		password: cfg.Password,
	}
	if cfg.PasswordHash != "" {
		c.passwordHash = []byte(cfg.PasswordHash)
	}
	return c
}

// Verify checks an email and password pair and returns
// domain.ErrUnauthorized on mismatch.
func (c *Credentials) Verify(email, password string) error {
	emailOK := c.email != "" && strings.EqualFold(strings.TrimSpace(email), c.email)

	var passOK bool
	switch {
	case c.passwordHash != nil:
		passOK = bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
	case c.password != "":
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	}

	if !emailOK || !passOK {
		return domain.ErrUnauthorized
	}
	return nil
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is empty")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
