package seo

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
)

// Route names registered on the frontend group.
const (
	routeBlogIndex      = "blog-index"
	routeBlogPost       = "blog-post"
	routeCaseStudyIndex = "case-study-index"
	routeCaseStudy      = "case-study"
)

// URLBuilder produces the site's public URLs through a go-urlkit route
// manager. Canonical URLs carry a trailing slash to match the generated
// directory layout (`<route>/index.html`).
type URLBuilder struct {
	manager *urlkit.RouteManager
	site    runtimeconfig.SiteConfig
}

// NewURLBuilder registers the blog and case-study routes under the site's
// base URL.
func NewURLBuilder(site runtimeconfig.SiteConfig) *URLBuilder {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: strings.TrimRight(site.BaseURL, "/"),
				Paths: map[string]string{
					routeBlogIndex:      site.BlogBasePath,
					routeBlogPost:       site.BlogBasePath + "/:slug",
					routeCaseStudyIndex: site.CaseStudyBasePath,
					routeCaseStudy:      site.CaseStudyBasePath + "/:slug",
				},
			},
		},
	})
	return &URLBuilder{manager: manager, site: site}
}

// BlogIndexURL returns the canonical blog listing URL.
func (b *URLBuilder) BlogIndexURL() string {
	return b.build(routeBlogIndex, "")
}

// BlogPostURL returns the canonical URL for a blog post slug.
func (b *URLBuilder) BlogPostURL(slug string) string {
	return b.build(routeBlogPost, slug)
}

// CaseStudyIndexURL returns the canonical case-study listing URL.
func (b *URLBuilder) CaseStudyIndexURL() string {
	return b.build(routeCaseStudyIndex, "")
}

// CaseStudyURL returns the canonical URL for a case-study slug.
func (b *URLBuilder) CaseStudyURL(slug string) string {
	return b.build(routeCaseStudy, slug)
}

// BaseURL returns the configured site origin.
func (b *URLBuilder) BaseURL() string {
	return strings.TrimRight(b.site.BaseURL, "/")
}

func (b *URLBuilder) build(route, slug string) string {
	url, err := b.safeBuild(route, slug)
	if err != nil || url == "" {
		// Route lookup failures degrade to plain path joining so page
		// generation never stalls on URL construction.
		url = b.fallback(route, slug)
	}
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url
}

func (b *URLBuilder) safeBuild(route, slug string) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("sitegen seo: route %q not registered: %v", route, rec)
		}
	}()
	builder := b.manager.Group("frontend").Builder(route)
	if slug != "" {
		builder.WithParam("slug", slug)
	}
	return builder.Build()
}

func (b *URLBuilder) fallback(route, slug string) string {
	base := strings.TrimRight(b.site.BaseURL, "/")
	path := b.site.BlogBasePath
	if route == routeCaseStudyIndex || route == routeCaseStudy {
		path = b.site.CaseStudyBasePath
	}
	url := base + path
	if slug != "" {
		url += "/" + slug
	}
	return url
}
