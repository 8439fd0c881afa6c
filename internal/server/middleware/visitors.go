package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/domain"
)

type visitRecorder interface {
	Record(ctx context.Context, hashedIP, userAgent, path string) (domain.Visit, error)
}

// untrackedPrefixes never count as page views.
var untrackedPrefixes = []string{"/static/", "/images/", "/api/", "/admin", "/favicon", "/healthz", "/readyz"}

// HashIP returns a salted SHA-256 of ip truncated to 16 hex characters. The
// same ip and salt always give the same value.
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// TrackVisits records GET page views with a hashed client IP. Requests with
// DNT: 1 are not recorded. Recording failures are logged, never surfaced.
func TrackVisits(rec visitRecorder, salt string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldTrack(c) {
			_, err := rec.Record(c.Request.Context(), HashIP(c.ClientIP(), salt),
				truncateUA(c.GetHeader("User-Agent")), c.Request.URL.Path)
			if err != nil {
				logger.WarnContext(c.Request.Context(), "record visit",
					slog.String("error", err.Error()),
					slog.String("request_id", RequestIDFrom(c)),
				)
			}
		}
		c.Next()
	}
}

func shouldTrack(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet {
		return false
	}
	if c.GetHeader("DNT") == "1" || c.GetHeader("Sec-GPC") == "1" {
		return false
	}
	path := c.Request.URL.Path
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

func truncateUA(ua string) string {
	const maxLen = 256
	if len(ua) > maxLen {
		return ua[:maxLen]
	}
	return ua
}
