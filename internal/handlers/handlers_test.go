package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"misakif.uk/internal/catalog"
	"misakif.uk/internal/config"
	"misakif.uk/internal/models"
	"misakif.uk/internal/services"
)

func newTestRouter(t *testing.T, projects []models.Project) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	cfg := &config.Config{ServerAddr: ":0", StaticDir: t.TempDir()}
	return SetupRoutes(cfg, zap.New(core), services.NewProjectService(projects)), logs
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t, catalog.Projects())

	rec := get(t, h, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListProjects(t *testing.T) {
	h, logs := newTestRouter(t, catalog.Projects())

	rec := get(t, h, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)

	assert.Equal(t, "Synthesizer Flow", body[0]["title"])
	assert.Equal(t, "synthesizer-flow", body[0]["slug"])
	assert.Equal(t, "external", body[0]["linkKind"])
	assert.Equal(t, "https://synthesizer-flow.misakif.uk", body[0]["href"])
	assert.Equal(t, "/static/images/SynthesizerFlow/QQ20250406-162010.png", body[0]["imgSrc"])

	assert.Equal(t, "The Time Machine", body[1]["title"])
	assert.Equal(t, "internal", body[1]["linkKind"])
	assert.Equal(t, "/blog/the-time-machine", body[1]["href"])

	assert.Equal(t, 1, logs.FilterMessage("HTTP request").Len())
}

func TestListProjects_OmitsMissingOptionalFields(t *testing.T) {
	h, _ := newTestRouter(t, []models.Project{{Title: "Bare", Description: "Nothing else."}})

	rec := get(t, h, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.NotContains(t, body[0], "href")
	assert.NotContains(t, body[0], "imgSrc")
	assert.Equal(t, "none", body[0]["linkKind"])
}

func TestGetProject(t *testing.T) {
	h, _ := newTestRouter(t, catalog.Projects())

	rec := get(t, h, "/api/projects/the-time-machine")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The Time Machine", body["title"])
	assert.Equal(t, "/static/images/time-machine.jpg", body["imgSrc"])
}

func TestGetProject_NotFound(t *testing.T) {
	h, _ := newTestRouter(t, catalog.Projects())

	rec := get(t, h, "/api/projects/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())
}

func TestProjectsPage(t *testing.T) {
	h, _ := newTestRouter(t, catalog.Projects())

	rec := get(t, h, "/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	first := strings.Index(body, "Synthesizer Flow")
	second := strings.Index(body, "The Time Machine")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)

	assert.Contains(t, body, `<a href="https://synthesizer-flow.misakif.uk" target="_blank" rel="noopener noreferrer">`)
	assert.Contains(t, body, `<a href="/blog/the-time-machine">`)
	assert.Contains(t, body, `src="/static/images/time-machine.jpg"`)
	assert.Contains(t, body, "模块化音频合成器")
}

func TestProjectsPage_RootServesListing(t *testing.T) {
	h, _ := newTestRouter(t, catalog.Projects())

	rec := get(t, h, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Projects</h1>")
}

func TestProjectsPage_WithoutLinkOrImage(t *testing.T) {
	h, _ := newTestRouter(t, []models.Project{{Title: "Plain", Description: "Just text."}})

	body := get(t, h, "/projects").Body.String()
	assert.Contains(t, body, "<h2>Plain</h2>")
	assert.NotContains(t, body, "<img")
	assert.NotContains(t, body, `target="_blank"`)
}

func TestProjectsPage_ImageWithoutLink(t *testing.T) {
	h, _ := newTestRouter(t, []models.Project{{Title: "Pictured", Description: "d", ImgSrc: models.Ptr("/static/images/p.png")}})

	body := get(t, h, "/projects").Body.String()
	assert.Contains(t, body, `<img src="/static/images/p.png" alt="Pictured">`)
	assert.Contains(t, body, "<h2>Pictured</h2>")
	assert.NotContains(t, body, "<a ")
}

func TestRouter_PanicIsLoggedAsServerError(t *testing.T) {
	h, logs := newTestRouter(t, catalog.Projects())
	mux, ok := h.(*chi.Mux)
	require.True(t, ok)
	mux.Get("/explode", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := get(t, h, "/explode")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	requests := logs.FilterMessage("HTTP request").All()
	require.Len(t, requests, 1)
	assert.Equal(t, int64(http.StatusInternalServerError), requests[0].ContextMap()["status"])
	assert.Equal(t, "/explode", requests[0].ContextMap()["path"])
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "a.txt"), []byte("hello"), 0644))

	cfg := &config.Config{StaticDir: dir}
	h := SetupRoutes(cfg, nil, services.NewProjectService(nil))

	rec := get(t, h, "/static/images/a.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
}
