package generator

import (
	"path/filepath"
	"strings"
)

// Output directory names are fixed regardless of the public base paths:
// the deployment layer maps the tree onto the site's routes.
const (
	blogOutputDir  = "blog"
	studyOutputDir = "case-studies"
)

// pageOutputPath returns the artifact path for a section's index page
// (empty slug) or a per-slug page directory.
func pageOutputPath(outputDir, section, slug string) string {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return filepath.Join(outputDir, section, "index.html")
	}
	return filepath.Join(outputDir, section, slug, "index.html")
}
