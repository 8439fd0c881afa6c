// Package server is the HTTP endpoint layer: a gin router over the store,
// answering every API call with a {success, data|error} envelope.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/auth"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/notify"
	"github.com/Zachkp/folio/internal/server/middleware"
	"github.com/Zachkp/folio/internal/store"
)

// Deps are the server's collaborators.
type Deps struct {
	Config   *config.Config
	Store    *store.Store
	JWT      *auth.JWTManager
	Creds    *auth.Credentials
	Notifier notify.Notifier
	Logger   *slog.Logger
}

// Server owns the router.
type Server struct {
	cfg      *config.Config
	store    *store.Store
	jwt      *auth.JWTManager
	creds    *auth.Credentials
	notifier notify.Notifier
	logger   *slog.Logger
	engine   *gin.Engine
}

// New builds the server and its routes.
func New(d Deps) (*Server, error) {
	if d.Config == nil || d.Store == nil || d.JWT == nil || d.Creds == nil {
		return nil, fmt.Errorf("server: config, store, jwt and credentials are required")
	}
	s := &Server{
		cfg:      d.Config,
		store:    d.Store,
		jwt:      d.JWT,
		creds:    d.Creds,
		notifier: d.Notifier,
		logger:   d.Logger,
	}
	if s.notifier == nil {
		s.notifier = notify.Noop{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With(slog.String("component", "http"))

	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() error {
	tmpl, err := loadTemplates()
	if err != nil {
		return fmt.Errorf("server: parse templates: %w", err)
	}

	r := gin.New()
	r.ContextWithFallback = true
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.RequestID(),
		middleware.Logger(s.logger),
		middleware.Recovery(s.logger),
		middleware.CORS(s.cfg.CORS),
		middleware.BodyLimit(s.cfg.Server.MaxBodyBytes),
	)

	r.GET("/healthz", s.healthz)
	r.GET("/readyz", s.readyz)

	if dir := s.cfg.Web.StaticDir; dir != "" {
		r.Static("/static", dir)
	}

	page := []gin.HandlerFunc{}
	if s.cfg.Analytics.Enabled {
		page = append(page, middleware.TrackVisits(s.store.Visits, s.cfg.Analytics.Salt, s.logger))
	}
	r.GET("/", append(page, s.index)...)

	admin := middleware.AdminAuth(s.jwt, s.cfg.Admin.RequireAuth)
	loginLimit := middleware.NewRateLimiter(s.cfg.RateLimit.LoginPerMinute).Limit()
	contactLimit := middleware.NewRateLimiter(s.cfg.RateLimit.ContactPerMinute).Limit()

	api := r.Group("/api")
	registerCollection(api, "/projects", s.store.Projects, admin, s.logger)
	registerCollection(api, "/experiences", s.store.Experiences, admin, s.logger)
	registerCollection(api, "/skills", s.store.Skills, admin, s.logger)
	registerCollection(api, "/certificates", s.store.Certificates, admin, s.logger)

	api.GET("/settings", s.getSettings)
	api.POST("/settings", admin, s.saveSettings)
	api.PUT("/settings", admin, s.saveSettings)

	api.POST("/contacts", contactLimit, s.submitContact)
	api.GET("/contacts", admin, s.getContacts)
	api.PUT("/contacts", admin, s.markContact)
	api.PATCH("/contacts", admin, s.markContact)
	api.DELETE("/contacts", admin, s.deleteContact)

	api.POST("/auth/login", loginLimit, s.login)
	api.POST("/auth/logout", s.logout)
	api.GET("/auth/session", admin, s.session)

	adm := api.Group("/admin", admin)
	adm.GET("/stats", s.adminStats)
	adm.GET("/export", s.export)
	adm.POST("/visits/purge", s.purgeVisits)

	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		fail(c, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.HandleMethodNotAllowed = true

	s.engine = r
	return nil
}

// Describe lists the registered routes, for startup logs.
func (s *Server) Describe() []string {
	routes := s.engine.Routes()
	out := make([]string, 0, len(routes))
	for _, rt := range routes {
		if strings.HasPrefix(rt.Path, "/static") {
			continue
		}
		out = append(out, rt.Method+" "+rt.Path)
	}
	return out
}
