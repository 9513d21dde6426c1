package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"misakif.uk/internal/models"
)

// Format selects the encoding of an export file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml"
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (want json or yaml)", s)
}

// Write validates every project and writes them, in order, to
// <outputDir>/projects.<format>. It returns the path written.
func Write(outputDir string, format Format, projects []models.Project) (string, error) {
	for i, p := range projects {
		if err := p.Validate(); err != nil {
			return "", fmt.Errorf("project %d (%q): %w", i, p.Title, err)
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	list := models.ProjectList{Projects: projects}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(list, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(list)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", format, err)
	}

	path := filepath.Join(outputDir, "projects."+string(format))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
