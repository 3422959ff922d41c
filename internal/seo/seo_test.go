package seo_test

import (
	"testing"

	"github.com/goliatone/go-sitegen/internal/contentful"
	"github.com/goliatone/go-sitegen/internal/seo"
)

func assetInclude(id, url string) contentful.Asset {
	return contentful.Asset{
		Sys: contentful.Sys{ID: id, Type: "Asset"},
		Fields: map[string]any{
			"file": map[string]any{"en-US": map[string]any{"url": url}},
		},
	}
}

func assetLink(id string) map[string]any {
	return map[string]any{
		"sys": map[string]any{"id": id, "type": "Link", "linkType": "Asset"},
	}
}

func TestMetadataFromEntry(t *testing.T) {
	includes := contentful.Includes{Asset: []contentful.Asset{
		assetInclude("share1", "//img.example.com/one.png"),
		assetInclude("share2", "https://img.example.com/two.png"),
	}}
	entry := &contentful.Entry{
		Sys: contentful.Sys{ID: "seo1", Type: "Entry"},
		Fields: map[string]any{
			"title":        map[string]any{"en-US": "Page title"},
			"description":  map[string]any{"en-US": "Page description"},
			"canonicalUrl": map[string]any{"en-US": "https://example.com/custom/"},
			"noindex":      map[string]any{"en-US": true},
			"shareImages": map[string]any{"en-US": []any{
				assetLink("share1"),
				assetLink("missing"),
				assetLink("share2"),
			}},
		},
	}

	meta := seo.FromEntry(entry, includes)
	if meta.Title != "Page title" || meta.Description != "Page description" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.CanonicalURL != "https://example.com/custom/" {
		t.Fatalf("canonical override lost: %q", meta.CanonicalURL)
	}
	if !meta.Noindex || meta.Nofollow {
		t.Fatalf("robots flags wrong: %+v", meta)
	}
	want := []string{"https://img.example.com/one.png", "https://img.example.com/two.png"}
	if len(meta.ShareImages) != len(want) {
		t.Fatalf("unresolvable share image must be skipped, got %v", meta.ShareImages)
	}
	for i, url := range want {
		if meta.ShareImages[i] != url {
			t.Fatalf("share image %d = %q, want %q", i, meta.ShareImages[i], url)
		}
	}
}

func TestMetadataFromNilEntry(t *testing.T) {
	meta := seo.FromEntry(nil, contentful.Includes{})
	if meta.Title != "" || meta.Noindex || len(meta.ShareImages) != 0 {
		t.Fatalf("nil entry must yield zero metadata: %+v", meta)
	}
}

func TestAuthorFromEntry(t *testing.T) {
	includes := contentful.Includes{Asset: []contentful.Asset{
		assetInclude("avatar1", "//img.example.com/avatar.png"),
	}}
	entry := &contentful.Entry{
		Sys: contentful.Sys{ID: "author1", Type: "Entry"},
		Fields: map[string]any{
			"name":        map[string]any{"en-US": "Dana Smith"},
			"avatar":      map[string]any{"en-US": assetLink("avatar1")},
			"bio":         map[string]any{"en-US": "Writes about infrastructure."},
			"roleCompany": map[string]any{"en-US": "CTO, Example Inc"},
		},
	}

	author := seo.AuthorFromEntry(entry, includes)
	if author == nil {
		t.Fatal("expected author")
	}
	if author.Name != "Dana Smith" || author.RoleCompany != "CTO, Example Inc" {
		t.Fatalf("unexpected author: %+v", author)
	}
	if author.AvatarURL != "https://img.example.com/avatar.png" {
		t.Fatalf("avatar url = %q", author.AvatarURL)
	}
}

func TestAuthorFromEntryRequiresName(t *testing.T) {
	entry := &contentful.Entry{
		Sys:    contentful.Sys{ID: "author1", Type: "Entry"},
		Fields: map[string]any{"bio": "no name"},
	}
	if got := seo.AuthorFromEntry(entry, contentful.Includes{}); got != nil {
		t.Fatalf("author without name must be nil, got %+v", got)
	}
	if got := seo.AuthorFromEntry(nil, contentful.Includes{}); got != nil {
		t.Fatalf("nil entry must be nil, got %+v", got)
	}
}

func TestFeaturedImageURL(t *testing.T) {
	includes := contentful.Includes{Asset: []contentful.Asset{
		assetInclude("hero", "//img.example.com/hero.png"),
	}}
	camel := &contentful.Entry{Fields: map[string]any{
		"featuredImage": map[string]any{"en-US": assetLink("hero")},
	}}
	snake := &contentful.Entry{Fields: map[string]any{
		"featured_image": assetLink("hero"),
	}}

	for _, entry := range []*contentful.Entry{camel, snake} {
		if got := seo.FeaturedImageURL(entry, includes); got != "https://img.example.com/hero.png" {
			t.Fatalf("featured image url = %q", got)
		}
	}
	if got := seo.FeaturedImageURL(nil, includes); got != "" {
		t.Fatalf("nil entry must yield empty url, got %q", got)
	}
}

func TestFormatPublishedDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-09T10:30:00Z", "March 9, 2024"},
		{"2024-03-09", "March 9, 2024"},
		{"not a date", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := seo.FormatPublishedDate(tc.in); got != tc.want {
			t.Fatalf("FormatPublishedDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
