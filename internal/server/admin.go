package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const exportFilename = "portfolio-export.json"

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.store.AdminStats(c.Request.Context())
	if err != nil {
		storeFailed(c, s.logger, err, "", "failed to load statistics")
		return
	}
	ok(c, stats)
}

// export downloads a snapshot of all content for backups.
func (s *Server) export(c *gin.Context) {
	snapshot, err := s.store.Export(c.Request.Context())
	if err != nil {
		storeFailed(c, s.logger, err, "", "failed to export content")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFilename)
	s.logger.InfoContext(c.Request.Context(), "content exported",
		slog.Int("projects", len(snapshot.Projects)),
		slog.Int("contacts", len(snapshot.Contacts)),
	)
	c.IndentedJSON(http.StatusOK, snapshot)
}

// PurgeVisits drops visit records older than the retention window. A zero
// window keeps everything.
func (s *Server) PurgeVisits(ctx context.Context) {
	days := s.cfg.Analytics.RetentionDays
	if days <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	n, err := s.store.Visits.PurgeBefore(ctx, cutoff)
	if err != nil {
		s.logger.ErrorContext(ctx, "purge visits", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "purged old visits", slog.Int64("removed", n), slog.Int("retention_days", days))
	}
}

func (s *Server) purgeVisits(c *gin.Context) {
	s.PurgeVisits(c.Request.Context())
	okEmpty(c)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyz answers 503 while the store is unreachable.
func (s *Server) readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		s.logger.WarnContext(ctx, "readiness check failed", slog.String("error", err.Error()))
		fail(c, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
