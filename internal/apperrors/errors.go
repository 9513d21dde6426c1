package apperrors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrEmptyTitle       = errors.New("project title is empty")
	ErrEmptyDescription = errors.New("project description is empty")
)
