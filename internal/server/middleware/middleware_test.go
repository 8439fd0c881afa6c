package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/auth"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec = serve(r, req)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestLogger_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestID(), Logger(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"INFO"`)
	assert.Contains(t, lines[0], `"path":"/ok"`)
	assert.Contains(t, lines[1], `"level":"ERROR"`)
	assert.Contains(t, lines[1], `"status":500`)
}

func TestRecovery_Envelope(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(discard()))
	r.GET("/", func(c *gin.Context) { panic("kaboom") })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"internal server error"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{
		AllowedOrigins:   "https://a.example, https://b.example",
		AllowedMethods:   "GET,POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
		MaxAge:           60,
	}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://b.example")
	rec := serve(r, req)
	assert.Equal(t, "https://b.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = serve(r, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://a.example")
	rec = serve(r, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET,POST", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "60", rec.Header().Get("Access-Control-Max-Age"))
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(3)
	r := gin.New()
	r.POST("/", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(r, req)
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send("1.2.3.4").Code, "request %d", i)
	}
	rec := send("1.2.3.4")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "20", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"success":false,"error":"rate limit exceeded"}`, rec.Body.String())

	assert.Equal(t, http.StatusOK, send("5.6.7.8").Code)
}

func TestRateLimiter_RefillsAndEvicts(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(60)
	rl.now = func() time.Time { return now }

	for i := 0; i < 60; i++ {
		require.True(t, rl.Allow("a"))
	}
	assert.False(t, rl.Allow("a"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("a"))

	now = now.Add(limiterIdleTTL + time.Minute)
	rl.Allow("b")
	assert.Equal(t, 1, rl.size())
}

type stubValidator struct {
	token string
}

func (s stubValidator) Validate(token string) (auth.Session, error) {
	if token != s.token {
		return auth.Session{}, errors.New("bad token")
	}
	return auth.Session{Subject: "owner"}, nil
}

func TestAdminAuth(t *testing.T) {
	r := gin.New()
	r.GET("/", AdminAuth(stubValidator{token: "good"}, true), func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, sess.Subject)
	})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"authentication required"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = serve(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "owner", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieSession, Value: "good"})
	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestAdminAuth_NotRequired(t *testing.T) {
	r := gin.New()
	r.GET("/", AdminAuth(stubValidator{token: "good"}, false), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

type visitLog struct {
	visits []domain.Visit
	err    error
}

func (v *visitLog) Record(_ context.Context, hashedIP, userAgent, path string) (domain.Visit, error) {
	if v.err != nil {
		return domain.Visit{}, v.err
	}
	visit := domain.Visit{HashedIP: hashedIP, UserAgent: userAgent, Path: path}
	v.visits = append(v.visits, visit)
	return visit, nil
}

func TestTrackVisits(t *testing.T) {
	log := &visitLog{}
	r := gin.New()
	r.Use(TrackVisits(log, "salt", discard()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/static/app.css", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1000"
	req.Header.Set("User-Agent", "test-agent")
	serve(r, req)

	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	serve(r, dnt)

	serve(r, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	require.Len(t, log.visits, 1)
	assert.Equal(t, HashIP("9.9.9.9", "salt"), log.visits[0].HashedIP)
	assert.Equal(t, "test-agent", log.visits[0].UserAgent)
	assert.Equal(t, "/", log.visits[0].Path)
}

func TestTrackVisits_FailureDoesNotBlock(t *testing.T) {
	r := gin.New()
	r.Use(TrackVisits(&visitLog{err: errors.New("db down")}, "", discard()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestHashIP(t *testing.T) {
	a := HashIP("1.1.1.1", "s")
	assert.Len(t, a, 16)
	assert.Equal(t, a, HashIP("1.1.1.1", "s"))
	assert.NotEqual(t, a, HashIP("1.1.1.1", "other"))
	assert.NotContains(t, a, "1.1.1.1")
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(4))
	r.POST("/", func(c *gin.Context) {
		_, err := c.GetRawData()
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	rec := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123")))
	assert.Equal(t, http.StatusOK, rec.Code)
}
