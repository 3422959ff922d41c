package seo_test

import (
	"testing"

	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
	"github.com/goliatone/go-sitegen/internal/seo"
)

func siteConfig() runtimeconfig.SiteConfig {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Site.BaseURL = "https://example.com"
	return cfg.Site
}

func TestURLBuilderCanonicalURLs(t *testing.T) {
	b := seo.NewURLBuilder(siteConfig())

	cases := []struct {
		got  string
		want string
	}{
		{b.BlogIndexURL(), "https://example.com/resources/blog/"},
		{b.BlogPostURL("hello-world"), "https://example.com/resources/blog/hello-world/"},
		{b.CaseStudyIndexURL(), "https://example.com/resources/case-studies/"},
		{b.CaseStudyURL("acme"), "https://example.com/resources/case-studies/acme/"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("url = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestURLBuilderCustomBasePaths(t *testing.T) {
	site := runtimeconfig.SiteConfig{
		BaseURL:           "https://blog.example.net/",
		BlogBasePath:      "/writing",
		CaseStudyBasePath: "/work",
	}
	b := seo.NewURLBuilder(site)
	if got := b.BlogPostURL("first"); got != "https://blog.example.net/writing/first/" {
		t.Fatalf("blog post url = %q", got)
	}
	if got := b.CaseStudyURL("client"); got != "https://blog.example.net/work/client/" {
		t.Fatalf("case study url = %q", got)
	}
	if got := b.BaseURL(); got != "https://blog.example.net" {
		t.Fatalf("base url = %q", got)
	}
}
