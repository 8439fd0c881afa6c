package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"year": func() int { return time.Now().Year() },
	"endDate": func(e domain.Experience) string {
		if e.IsCurrent {
			return "Present"
		}
		return e.EndDate
	},
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
}

// SkillGroup is one category of skills on the page, in listing order.
type SkillGroup struct {
	Category string
	Skills   []domain.Skill
}

// siteData is everything the public page renders. Sections that fail to
// load are left empty.
type siteData struct {
	Settings     domain.SiteSettings
	Projects     []domain.Project
	Experiences  []domain.Experience
	SkillGroups  []SkillGroup
	Certificates []domain.Certificate
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.loadSite(c.Request.Context()))
}

// loadSite reads the published content. Read failures are logged and never
// block the visitor.
func (s *Server) loadSite(ctx context.Context) siteData {
	published := store.ListOptions{PublishedOnly: true}
	var data siteData

	settings, err := s.store.Settings.Get(ctx)
	switch {
	case err == nil:
		data.Settings = settings
	case !errors.Is(err, domain.ErrNotFound):
		s.sectionFailed(ctx, "settings", err)
	}

	if data.Projects, err = s.store.Projects.List(ctx, published); err != nil {
		s.sectionFailed(ctx, "projects", err)
	}
	if data.Experiences, err = s.store.Experiences.List(ctx, published); err != nil {
		s.sectionFailed(ctx, "experiences", err)
	}
	skills, err := s.store.Skills.List(ctx, published)
	if err != nil {
		s.sectionFailed(ctx, "skills", err)
	}
	data.SkillGroups = groupSkills(skills)
	if data.Certificates, err = s.store.Certificates.List(ctx, store.ListOptions{}); err != nil {
		s.sectionFailed(ctx, "certificates", err)
	}
	return data
}

func (s *Server) sectionFailed(ctx context.Context, section string, err error) {
	s.logger.WarnContext(ctx, "public page section unavailable",
		slog.String("section", section),
		slog.String("error", err.Error()),
	)
}

// groupSkills splits skills, already ordered by category, into consecutive
// category groups.
func groupSkills(skills []domain.Skill) []SkillGroup {
	var groups []SkillGroup
	for _, sk := range skills {
		if n := len(groups); n == 0 || groups[n-1].Category != sk.Category {
			groups = append(groups, SkillGroup{Category: sk.Category})
		}
		last := &groups[len(groups)-1]
		last.Skills = append(last.Skills, sk)
	}
	return groups
}
