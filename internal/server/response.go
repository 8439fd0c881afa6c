package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/server/middleware"
)

// Every API response is {success, data} or {success, error}.

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func okEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}

// storeFailed maps a store error to a failure response. Not-found targets
// answer 404 with notFound; anything else is logged and answers 500 with
// msg.
func storeFailed(c *gin.Context, logger *slog.Logger, err error, notFound, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fail(c, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrAlreadyExists):
		fail(c, http.StatusConflict, "record already exists")
	default:
		_ = c.Error(err)
		logger.ErrorContext(c.Request.Context(), msg,
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.RequestIDFrom(c)),
		)
		fail(c, http.StatusInternalServerError, msg)
	}
}
