package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTManager_IssueValidate(t *testing.T) {
	m := NewJWTManager(testSecret, "folio", time.Hour)

	token, issued, err := m.Issue("owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	sess, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", sess.Subject)
	assert.True(t, sess.ExpiresAt.Equal(issued.ExpiresAt))
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager(testSecret, "folio", time.Minute)
	start := time.Now()
	m.now = func() time.Time { return start }

	token, _, err := m.Issue("owner")
	require.NoError(t, err)

	m.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = m.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager(testSecret, "folio", time.Hour)
	token, _, err := m.Issue("owner")
	require.NoError(t, err)

	other := NewJWTManager(strings.Repeat("x", 32), "folio", time.Hour)
	_, err = other.Validate(token)
	assert.Error(t, err, "wrong secret")

	wrongIssuer := NewJWTManager(testSecret, "someone-else", time.Hour)
	_, err = wrongIssuer.Validate(token)
	assert.Error(t, err, "wrong issuer")

	_, err = m.Validate("")
	assert.Error(t, err)

	_, err = m.Validate("not.a.token")
	assert.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "owner", Issuer: "folio"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Validate(unsigned)
	assert.Error(t, err, "alg none")
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret()
	require.NoError(t, err)
	b, err := RandomSecret()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestCredentials_PlainPassword(t *testing.T) {
	c := NewCredentials(config.AdminConfig{Email: "Owner@Example.com", Password: "s3cret"})

	assert.NoError(t, c.Verify("owner@example.com", "s3cret"))
	assert.NoError(t, c.Verify(" OWNER@example.com ", "s3cret"))
	assert.ErrorIs(t, c.Verify("owner@example.com", "wrong"), domain.ErrUnauthorized)
	assert.ErrorIs(t, c.Verify("someone@example.com", "s3cret"), domain.ErrUnauthorized)
	assert.ErrorIs(t, c.Verify("owner@example.com", ""), domain.ErrUnauthorized)
}

func TestCredentials_HashWins(t *testing.T) {
	hash, err := HashPassword("from-hash")
	require.NoError(t, err)

	c := NewCredentials(config.AdminConfig{Email: "o@example.com", Password: "plain", PasswordHash: hash})

	assert.NoError(t, c.Verify("o@example.com", "from-hash"))
	assert.ErrorIs(t, c.Verify("o@example.com", "plain"), domain.ErrUnauthorized)
}

func TestCredentials_Unconfigured(t *testing.T) {
	c := NewCredentials(config.AdminConfig{})
	assert.ErrorIs(t, c.Verify("", ""), domain.ErrUnauthorized)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}
