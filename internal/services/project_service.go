package services

import (
	"fmt"
	"strings"
	"unicode"

	"misakif.uk/internal/apperrors"
	"misakif.uk/internal/models"
)

// ProjectService answers read-only queries over the project catalog
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.filter(func(models.Project) bool { return true })
}

// GetBySlug returns the first project whose title slug matches
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	for i := range s.projects {
		if Slug(s.projects[i].Title) == slug {
			p := s.projects[i].Clone()
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", slug, apperrors.ErrNotFound)
}

// External returns projects linking off-site, in display order
func (s *ProjectService) External() []models.Project {
	return s.filter(func(p models.Project) bool { return p.LinkKind() == models.LinkExternal })
}

// Internal returns projects linking to an application route, in display order
func (s *ProjectService) Internal() []models.Project {
	return s.filter(func(p models.Project) bool { return p.LinkKind() == models.LinkInternal })
}

func (s *ProjectService) filter(keep func(models.Project) bool) []models.Project {
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Slug lowercases title and collapses every run of non-alphanumeric
// runes into a single dash.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
