package seo_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/internal/richtext"
	"github.com/goliatone/go-sitegen/internal/seo"
)

func TestFAQSchema(t *testing.T) {
	pairs := []richtext.FAQPair{
		{Question: "What is it?", Answer: "A static site pipeline."},
		{Question: "Is it fast?", Answer: "Yes."},
	}

	node := seo.FAQSchema(pairs)
	if node["@type"] != "FAQPage" {
		t.Fatalf("unexpected node type: %v", node["@type"])
	}
	entities, ok := node["mainEntity"].([]any)
	if !ok || len(entities) != 2 {
		t.Fatalf("mainEntity = %v", node["mainEntity"])
	}
	first := entities[0].(map[string]any)
	if first["name"] != "What is it?" {
		t.Fatalf("question name = %v", first["name"])
	}
	answer := first["acceptedAnswer"].(map[string]any)
	if answer["text"] != "A static site pipeline." {
		t.Fatalf("answer text = %v", answer["text"])
	}
}

func TestFAQSchemaEmpty(t *testing.T) {
	if node := seo.FAQSchema(nil); node != nil {
		t.Fatalf("zero pairs must yield nil, got %v", node)
	}
}

func TestPageGraphSkipsNilNodes(t *testing.T) {
	article := seo.ArticleSchema(seo.Article{Headline: "Hello", URL: "https://example.com/resources/blog/hello/"})
	crumbs := seo.BreadcrumbSchema([]seo.Breadcrumb{
		{Name: "Blog", URL: "https://example.com/resources/blog/"},
		{Name: "Hello", URL: "https://example.com/resources/blog/hello/"},
	})

	graph := seo.PageGraph(article, crumbs, seo.FAQSchema(nil))
	nodes := graph["@graph"].([]any)
	if len(nodes) != 2 {
		t.Fatalf("expected 2 graph nodes, got %d", len(nodes))
	}
	if graph["@context"] != "https://schema.org" {
		t.Fatalf("missing @context: %v", graph)
	}
}

func TestArticleSchemaOmitsEmptyFields(t *testing.T) {
	node := seo.ArticleSchema(seo.Article{Headline: "Bare", URL: "https://example.com/x/"})
	for _, key := range []string{"description", "image", "datePublished", "author", "publisher"} {
		if _, ok := node[key]; ok {
			t.Fatalf("empty field %q must be omitted: %v", key, node)
		}
	}
}

func TestBreadcrumbSchemaPositions(t *testing.T) {
	node := seo.BreadcrumbSchema([]seo.Breadcrumb{
		{Name: "Blog", URL: "https://example.com/resources/blog/"},
		{Name: "Post", URL: "https://example.com/resources/blog/post/"},
	})
	elements := node["itemListElement"].([]any)
	second := elements[1].(map[string]any)
	if second["position"] != 2 || second["name"] != "Post" {
		t.Fatalf("breadcrumb positions wrong: %v", elements)
	}
}

func TestMarshalGraphEscapesScriptTerminator(t *testing.T) {
	graph := seo.PageGraph(seo.FAQSchema([]richtext.FAQPair{
		{Question: "Inline markup?", Answer: `Use <script>alert(1)</script> carefully.`},
	}))

	tag, err := seo.MarshalGraph(graph)
	if err != nil {
		t.Fatalf("marshal graph: %v", err)
	}
	if !strings.HasPrefix(tag, `<script type="application/ld+json">`) || !strings.HasSuffix(tag, "</script>") {
		t.Fatalf("script tag malformed: %q", tag)
	}
	payload := strings.TrimSuffix(strings.TrimPrefix(tag, `<script type="application/ld+json">`), "</script>")
	if strings.Contains(payload, "</script>") {
		t.Fatalf("payload can terminate the tag early: %q", payload)
	}
	if !strings.Contains(payload, `<\/script>`) {
		t.Fatalf("terminator not escaped: %q", payload)
	}

	// The escaped payload must still be valid JSON with the content intact.
	var decoded map[string]any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
}
