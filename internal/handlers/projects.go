package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"misakif.uk/internal/apperrors"
	"misakif.uk/internal/models"
	"misakif.uk/internal/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// projectResponse is the API shape of a project: the stored fields plus
// values derived from them.
type projectResponse struct {
	models.Project
	Slug string          `json:"slug"`
	Kind models.LinkKind `json:"linkKind"`
}

func newProjectResponse(p models.Project) projectResponse {
	return projectResponse{Project: p, Slug: services.Slug(p.Title), Kind: p.LinkKind()}
}

// projectView is what the listing template renders
type projectView struct {
	Slug        string
	Title       string
	Description string
	Href        string
	ImgSrc      string
	External    bool
}

func newProjectView(p models.Project) projectView {
	v := projectView{
		Slug:        services.Slug(p.Title),
		Title:       p.Title,
		Description: p.Description,
		External:    p.LinkKind() == models.LinkExternal,
	}
	if p.HasLink() {
		v.Href = *p.Href
	}
	if p.HasImage() {
		v.ImgSrc = *p.ImgSrc
	}
	return v
}

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()

	resp := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, newProjectResponse(p))
	}
	respondJSON(w, h.logger, http.StatusOK, resp)
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetBySlug(slug)
	if errors.Is(err, apperrors.ErrNotFound) {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		h.logger.Error("get project", zap.String("slug", slug), zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, newProjectResponse(*project))
}

// ProjectsPage handles GET /projects with the HTML listing
func (h *ProjectHandler) ProjectsPage(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()

	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, newProjectView(p))
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "projects.html", map[string]any{"Projects": views}); err != nil {
		h.logger.Error("render projects page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
