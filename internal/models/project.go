package models

import (
	"strings"

	"misakif.uk/internal/apperrors"
)

// Project represents a showcased portfolio project or post
type Project struct {
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Href        *string `json:"href,omitempty" yaml:"href,omitempty"`
	ImgSrc      *string `json:"imgSrc,omitempty" yaml:"imgSrc,omitempty"`
}

// LinkKind classifies where a project's href points
type LinkKind string

const (
	LinkNone     LinkKind = "none"
	LinkInternal LinkKind = "internal"
	LinkExternal LinkKind = "external"
)

// Ptr returns a pointer to s, for filling optional fields in literals
func Ptr(s string) *string {
	return &s
}

// HasLink reports whether the project is clickable
func (p Project) HasLink() bool {
	return p.Href != nil && *p.Href != ""
}

// HasImage reports whether the project carries an illustration
func (p Project) HasImage() bool {
	return p.ImgSrc != nil && *p.ImgSrc != ""
}

// LinkKind derives the destination kind from href. An href with a URI
// scheme is external; anything else is an application route.
func (p Project) LinkKind() LinkKind {
	if !p.HasLink() {
		return LinkNone
	}
	if hasScheme(*p.Href) {
		return LinkExternal
	}
	return LinkInternal
}

// hasScheme reports whether href starts with an RFC 3986 scheme:
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) followed by ":".
func hasScheme(href string) bool {
	for i, r := range href {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		case r == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}

// Validate checks the required fields. Optional fields are not inspected.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return apperrors.ErrEmptyTitle
	}
	if strings.TrimSpace(p.Description) == "" {
		return apperrors.ErrEmptyDescription
	}
	return nil
}

// Clone returns a deep copy, so optional fields do not alias the original
func (p Project) Clone() Project {
	c := p
	if p.Href != nil {
		c.Href = Ptr(*p.Href)
	}
	if p.ImgSrc != nil {
		c.ImgSrc = Ptr(*p.ImgSrc)
	}
	return c
}

// ProjectList wraps the array of projects for file exports
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
