package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/auth"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/logging"
	"github.com/Zachkp/folio/internal/notify"
	"github.com/Zachkp/folio/internal/server"
	"github.com/Zachkp/folio/internal/store"
)

const purgeInterval = 24 * time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the portfolio HTTP server. Pending migrations are applied first unless
database.auto_migrate is off. Old visit records are purged at startup and
once a day.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log)
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.Database.AutoMigrate {
		applied, err := st.Migrate(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Any("versions", applied))
	}

	secret := cfg.Admin.JWTSecret
	if secret == "" {
		if secret, err = auth.RandomSecret(); err != nil {
			return err
		}
		logger.Warn("ADMIN_JWT_SECRET not set; using a random secret, sessions end on restart")
	}
	if !cfg.Admin.RequireAuth {
		logger.Warn("admin authentication disabled; write endpoints are open")
	}
	if !cfg.SMTP.Enabled() {
		logger.Info("SMTP credentials not set; contact notifications disabled")
	}

	srv, err := server.New(server.Deps{
		Config:   cfg,
		Store:    st,
		JWT:      auth.NewJWTManager(secret, cfg.Admin.JWTIssuer, cfg.Admin.TokenTTL),
		Creds:    auth.NewCredentials(cfg.Admin),
		Notifier: notify.New(cfg.SMTP),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	for _, route := range srv.Describe() {
		logger.Debug("route", slog.String("route", route))
	}

	go purgeLoop(ctx, srv)

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", httpServer.Addr),
			slog.String("driver", st.Driver()),
		)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// purgeLoop applies the visit retention window until ctx is done.
func purgeLoop(ctx context.Context, srv *server.Server) {
	srv.PurgeVisits(ctx)
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.PurgeVisits(ctx)
		}
	}
}
