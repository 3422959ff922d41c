package seo

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/goliatone/go-sitegen/internal/richtext"
)

// Article carries the fields needed for a schema.org Article node.
type Article struct {
	Headline      string
	Description   string
	URL           string
	ImageURL      string
	DatePublished string
	DateModified  string
	AuthorName    string
	SiteName      string
}

// Breadcrumb is one step of a BreadcrumbList.
type Breadcrumb struct {
	Name string
	URL  string
}

// FAQSchema builds a schema.org FAQPage node from extracted FAQ pairs.
// Zero pairs yield nil so callers can omit the node from the graph.
func FAQSchema(pairs []richtext.FAQPair) map[string]any {
	if len(pairs) == 0 {
		return nil
	}
	entities := make([]any, 0, len(pairs))
	for _, pair := range pairs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  pair.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  pair.Answer,
			},
		})
	}
	return map[string]any{
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// ArticleSchema builds a schema.org Article node. Optional fields are
// omitted when empty rather than serialized as "".
func ArticleSchema(a Article) map[string]any {
	node := map[string]any{
		"@type":            "Article",
		"headline":         a.Headline,
		"mainEntityOfPage": map[string]any{"@type": "WebPage", "@id": a.URL},
	}
	if a.Description != "" {
		node["description"] = a.Description
	}
	if a.ImageURL != "" {
		node["image"] = a.ImageURL
	}
	if a.DatePublished != "" {
		node["datePublished"] = a.DatePublished
	}
	if a.DateModified != "" {
		node["dateModified"] = a.DateModified
	}
	if a.AuthorName != "" {
		node["author"] = map[string]any{"@type": "Person", "name": a.AuthorName}
	}
	if a.SiteName != "" {
		node["publisher"] = map[string]any{"@type": "Organization", "name": a.SiteName}
	}
	return node
}

// BreadcrumbSchema builds a BreadcrumbList node. Positions are 1-based.
func BreadcrumbSchema(crumbs []Breadcrumb) map[string]any {
	if len(crumbs) == 0 {
		return nil
	}
	elements := make([]any, 0, len(crumbs))
	for i, crumb := range crumbs {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
			"item":     crumb.URL,
		})
	}
	return map[string]any{
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

// PageGraph assembles the page-level @graph. Nil nodes are skipped so a
// page without FAQ content gets a two-node graph.
func PageGraph(nodes ...map[string]any) map[string]any {
	graph := make([]any, 0, len(nodes))
	for _, node := range nodes {
		if node != nil {
			graph = append(graph, node)
		}
	}
	return map[string]any{
		"@context": "https://schema.org",
		"@graph":   graph,
	}
}

// MarshalGraph serializes a graph into an inline JSON-LD script tag.
// Content text may contain "</script>"; the "</" sequence is escaped to
// "<\/" so the payload cannot terminate the tag early.
func MarshalGraph(graph map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(graph); err != nil {
		return "", err
	}
	payload := strings.TrimRight(buf.String(), "\n")
	payload = strings.ReplaceAll(payload, "</", `<\/`)
	return `<script type="application/ld+json">` + payload + `</script>`, nil
}
