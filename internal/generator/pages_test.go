package generator_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/internal/contentful"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
)

func newAssembler(t *testing.T) *generator.Assembler {
	t.Helper()
	cfg := runtimeconfig.DefaultConfig()
	cfg.Site.BaseURL = "https://example.com"
	return generator.NewAssembler(cfg, nil)
}

func TestAssembleCaseStudyResults(t *testing.T) {
	a := newAssembler(t)
	entry := &contentful.Entry{
		Sys: contentful.Sys{ID: "study1", Type: "Entry"},
		Fields: map[string]any{
			"slug":       "acme",
			"title":      "Acme rollout",
			"clientName": "Acme Inc",
			"industry":   "Logistics",
			"results": map[string]any{"en-US": []any{
				map[string]any{
					"sys":    map[string]any{"id": "r1", "type": "Entry"},
					"fields": map[string]any{"value": "+40%", "label": "conversion uplift"},
				},
				map[string]any{
					"sys":    map[string]any{"id": "r2", "type": "Entry"},
					"fields": map[string]any{"metric": "2x", "description": "faster builds"},
				},
				map[string]any{
					"sys": map[string]any{"id": "missing", "type": "Link", "linkType": "Entry"},
				},
			}},
		},
	}

	view := a.CaseStudy(entry, contentful.Includes{}, nil)
	if view.ClientName != "Acme Inc" || view.Industry != "Logistics" {
		t.Fatalf("client fields lost: %+v", view)
	}
	if len(view.Results) != 2 {
		t.Fatalf("unresolvable result must be skipped, got %+v", view.Results)
	}
	if view.Results[0].Value != "+40%" || view.Results[0].Label != "conversion uplift" {
		t.Fatalf("result 0 = %+v", view.Results[0])
	}
	if view.Results[1].Value != "2x" || view.Results[1].Label != "faster builds" {
		t.Fatalf("result aliases not honoured: %+v", view.Results[1])
	}
	if view.CanonicalURL != "https://example.com/resources/case-studies/acme/" {
		t.Fatalf("canonical = %q", view.CanonicalURL)
	}
}

func TestAssembleAuthorBioMarkdown(t *testing.T) {
	a := newAssembler(t)
	entry := &contentful.Entry{
		Sys: contentful.Sys{ID: "post1", Type: "Entry"},
		Fields: map[string]any{
			"slug":  "with-author",
			"title": "With author",
			"author": map[string]any{"en-US": map[string]any{
				"sys":    map[string]any{"id": "a1", "type": "Entry"},
				"fields": map[string]any{"name": "Dana Smith", "bio": "Writes **bold** prose."},
			}},
		},
	}

	view := a.BlogPost(entry, contentful.Includes{}, nil)
	if view.Author == nil || view.Author.Name != "Dana Smith" {
		t.Fatalf("author missing: %+v", view.Author)
	}
	if !strings.Contains(view.AuthorBioHTML, "<strong>bold</strong>") {
		t.Fatalf("bio markdown not rendered: %q", view.AuthorBioHTML)
	}
}

func TestAssembleFAQPairs(t *testing.T) {
	a := newAssembler(t)
	entry := &contentful.Entry{
		Sys: contentful.Sys{ID: "post1", Type: "Entry"},
		Fields: map[string]any{
			"slug":  "faq-post",
			"title": "FAQ post",
			"faq": map[string]any{"en-US": map[string]any{
				"nodeType": "document",
				"content": []any{
					map[string]any{
						"nodeType": "heading-2",
						"content": []any{
							map[string]any{"nodeType": "text", "value": "What is it?"},
						},
					},
					map[string]any{
						"nodeType": "paragraph",
						"content": []any{
							map[string]any{"nodeType": "text", "value": "A pipeline."},
						},
					},
				},
			}},
		},
	}

	view := a.BlogPost(entry, contentful.Includes{}, nil)
	if len(view.FAQPairs) != 1 {
		t.Fatalf("faq pairs = %+v", view.FAQPairs)
	}
	if view.FAQPairs[0].Question != "What is it?" || view.FAQPairs[0].Answer != "A pipeline." {
		t.Fatalf("faq pair = %+v", view.FAQPairs[0])
	}
}

func TestAssembleCanonicalOverride(t *testing.T) {
	a := newAssembler(t)
	entry := &contentful.Entry{
		Sys: contentful.Sys{ID: "post1", Type: "Entry"},
		Fields: map[string]any{
			"slug":  "hello",
			"title": "Hello",
			"seo": map[string]any{"en-US": map[string]any{
				"sys":    map[string]any{"id": "seo1", "type": "Entry"},
				"fields": map[string]any{"canonicalUrl": "https://other.example.com/hello/"},
			}},
		},
	}

	view := a.BlogPost(entry, contentful.Includes{}, nil)
	if view.CanonicalURL != "https://other.example.com/hello/" {
		t.Fatalf("seo canonical override must win: %q", view.CanonicalURL)
	}
}

func TestAssembleDirectBodyFallback(t *testing.T) {
	a := newAssembler(t)
	entry := &contentful.Entry{
		Sys: contentful.Sys{ID: "post1", Type: "Entry"},
		Fields: map[string]any{
			"slug":  "direct",
			"title": "Direct body",
			"body": map[string]any{"en-US": map[string]any{
				"nodeType": "document",
				"content": []any{
					map[string]any{
						"nodeType": "paragraph",
						"content": []any{
							map[string]any{"nodeType": "text", "value": "Direct rich text"},
						},
					},
				},
			}},
		},
	}

	view := a.BlogPost(entry, contentful.Includes{}, nil)
	if !strings.Contains(view.BodyHTML, "<p>Direct rich text</p>") {
		t.Fatalf("direct body fallback broken: %q", view.BodyHTML)
	}
}
