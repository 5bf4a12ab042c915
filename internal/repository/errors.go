package repository

import "errors"

// Common repository errors
var (
	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrSlugTaken is returned when another project already owns the slug
	ErrSlugTaken = errors.New("project slug already taken")
)
