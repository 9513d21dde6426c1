package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misakif.uk/internal/apperrors"
	"misakif.uk/internal/catalog"
	"misakif.uk/internal/models"
)

func newTestService() *ProjectService {
	return NewProjectService(catalog.Projects())
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "synthesizer-flow", Slug("Synthesizer Flow"))
	assert.Equal(t, "the-time-machine", Slug("The Time Machine"))
	assert.Equal(t, "a-b", Slug("  A -- b!! "))
	assert.Equal(t, "", Slug("!!!"))
}

func TestGetAll_PreservesOrder(t *testing.T) {
	s := newTestService()
	projects := s.GetAll()

	require.Len(t, projects, 2)
	assert.Equal(t, "Synthesizer Flow", projects[0].Title)
	assert.Equal(t, "The Time Machine", projects[1].Title)
}

func TestGetBySlug(t *testing.T) {
	s := newTestService()

	p, err := s.GetBySlug("the-time-machine")
	require.NoError(t, err)
	assert.Equal(t, "The Time Machine", p.Title)
	assert.Equal(t, "/blog/the-time-machine", *p.Href)
}

func TestGetBySlug_NotFound(t *testing.T) {
	s := newTestService()

	p, err := s.GetBySlug("missing")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestGetBySlug_DuplicateTitlesReturnFirst(t *testing.T) {
	s := NewProjectService([]models.Project{
		{Title: "Same", Description: "first"},
		{Title: "same", Description: "second"},
	})

	p, err := s.GetBySlug("same")
	require.NoError(t, err)
	assert.Equal(t, "first", p.Description)
}

func TestExternalAndInternal(t *testing.T) {
	s := NewProjectService([]models.Project{
		{Title: "A", Description: "d", Href: models.Ptr("https://a.example")},
		{Title: "B", Description: "d"},
		{Title: "C", Description: "d", Href: models.Ptr("/c")},
		{Title: "D", Description: "d", Href: models.Ptr("https://d.example")},
	})

	external := s.External()
	require.Len(t, external, 2)
	assert.Equal(t, "A", external[0].Title)
	assert.Equal(t, "D", external[1].Title)

	internal := s.Internal()
	require.Len(t, internal, 1)
	assert.Equal(t, "C", internal[0].Title)
}

func TestGetAll_ReturnsCopies(t *testing.T) {
	s := newTestService()

	first := s.GetAll()
	*first[0].Href = "changed"

	again := s.GetAll()
	assert.Equal(t, "https://synthesizer-flow.misakif.uk", *again[0].Href)
}
