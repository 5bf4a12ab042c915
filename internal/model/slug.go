package model

import "strings"

// Slugify derives a URL-safe slug from a project name: the name is
// lowercased and every run of whitespace becomes a single hyphen.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
