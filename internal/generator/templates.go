package generator

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/goliatone/go-sitegen/internal/seo"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// pageTemplates holds the parsed page chrome and archetype bodies.
type pageTemplates struct {
	set *template.Template
}

func newPageTemplates() (*pageTemplates, error) {
	set, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &pageTemplates{set: set}, nil
}

func (p *pageTemplates) render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.set.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chromeData feeds the outer page template. Main and JSONLD are already
// rendered HTML; everything else is escaped by the template engine.
type chromeData struct {
	SiteName        string
	MetaTitle       string
	MetaDescription string
	Robots          string
	Canonical       string
	ShareImages     []string
	JSONLD          template.HTML
	Main            template.HTML
}

type articleData struct {
	Title         string
	PublishedISO  string
	PublishedDate string
	FeaturedImage string
	Body          template.HTML
	Author        *seo.Author
	AuthorBio     template.HTML
}

type studyData struct {
	articleData
	ClientName string
	Industry   string
	Results    []Result
}

type indexData struct {
	Heading string
	Items   []indexItem
}

type indexItem struct {
	Title   string
	URL     string
	Excerpt string
	Date    string
}

// robotsContent builds the robots meta value from the SEO flags; "" means
// no robots tag at all.
func robotsContent(meta seo.Metadata) string {
	switch {
	case meta.Noindex && meta.Nofollow:
		return "noindex, nofollow"
	case meta.Noindex:
		return "noindex"
	case meta.Nofollow:
		return "nofollow"
	}
	return ""
}
