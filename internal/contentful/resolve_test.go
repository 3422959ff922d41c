package contentful_test

import (
	"testing"

	"github.com/goliatone/go-sitegen/internal/contentful"
)

func entryWithTitle(id, title string) contentful.Entry {
	return contentful.Entry{
		Sys:    contentful.Sys{ID: id, Type: "Entry"},
		Fields: map[string]any{"title": title},
	}
}

func TestResolveEntryItemsFirst(t *testing.T) {
	items := []contentful.Entry{entryWithTitle("dup", "from items")}
	includes := contentful.Includes{
		Entry: []contentful.Entry{entryWithTitle("dup", "from includes")},
	}

	got := contentful.ResolveEntry("dup", includes, items)
	if got == nil {
		t.Fatal("expected entry")
	}
	if got.FieldString("title") != "from items" {
		t.Fatalf("expected items pool to win, got %q", got.FieldString("title"))
	}
}

func TestResolveEntryFallsBackToIncludes(t *testing.T) {
	includes := contentful.Includes{
		Entry: []contentful.Entry{entryWithTitle("only-included", "included")},
	}
	got := contentful.ResolveEntry("only-included", includes, nil)
	if got == nil || got.FieldString("title") != "included" {
		t.Fatalf("expected included entry, got %+v", got)
	}
}

func TestResolveEntryMissing(t *testing.T) {
	if got := contentful.ResolveEntry("nope", contentful.Includes{}, nil); got != nil {
		t.Fatalf("expected nil for unknown id got %+v", got)
	}
	if got := contentful.ResolveEntry("", contentful.Includes{}, nil); got != nil {
		t.Fatalf("expected nil for empty id got %+v", got)
	}
}

func TestResolveAsset(t *testing.T) {
	includes := contentful.Includes{
		Asset: []contentful.Asset{{
			Sys: contentful.Sys{ID: "img1", Type: "Asset"},
			Fields: map[string]any{
				"file": map[string]any{
					"en-US": map[string]any{"url": "//images.example.com/pic.png"},
				},
			},
		}},
	}

	asset := contentful.ResolveAsset("img1", includes)
	if asset == nil {
		t.Fatal("expected asset")
	}
	if got := contentful.AssetURL(asset); got != "https://images.example.com/pic.png" {
		t.Fatalf("AssetURL = %q", got)
	}
	if got := contentful.ResolveAsset("missing", includes); got != nil {
		t.Fatalf("expected nil got %+v", got)
	}
}

func TestAssetURLAbsent(t *testing.T) {
	if got := contentful.AssetURL(nil); got != "" {
		t.Fatalf("expected empty url for nil asset got %q", got)
	}
	empty := &contentful.Asset{Fields: map[string]any{}}
	if got := contentful.AssetURL(empty); got != "" {
		t.Fatalf("expected empty url for missing file got %q", got)
	}
}

func TestAssetURLFullFilePayload(t *testing.T) {
	// Real file payloads carry siblings next to url; none of them may
	// shadow it in either the bare or the locale-wrapped shape.
	file := map[string]any{
		"url":         "//cdn.example.com/full.png",
		"fileName":    "full.png",
		"contentType": "image/png",
		"details":     map[string]any{"size": 1024.0},
	}

	bare := &contentful.Asset{Fields: map[string]any{"file": file}}
	if got := contentful.AssetURL(bare); got != "https://cdn.example.com/full.png" {
		t.Fatalf("bare file payload: AssetURL = %q", got)
	}

	wrapped := &contentful.Asset{
		Fields: map[string]any{"file": map[string]any{"en-US": file}},
	}
	if got := contentful.AssetURL(wrapped); got != "https://cdn.example.com/full.png" {
		t.Fatalf("locale-wrapped file payload: AssetURL = %q", got)
	}
}

func TestAssetURLAlreadyAbsolute(t *testing.T) {
	asset := &contentful.Asset{
		Fields: map[string]any{
			"file": map[string]any{"url": "https://cdn.example.com/a.jpg"},
		},
	}
	if got := contentful.AssetURL(asset); got != "https://cdn.example.com/a.jpg" {
		t.Fatalf("AssetURL = %q", got)
	}
}

func TestLinkID(t *testing.T) {
	stub := map[string]any{
		"sys": map[string]any{"id": "e1", "type": "Link", "linkType": "Entry"},
	}
	id, kind, ok := contentful.LinkID(stub)
	if !ok || id != "e1" || kind != "Entry" {
		t.Fatalf("LinkID = %q %q %v", id, kind, ok)
	}

	inlined := map[string]any{
		"sys":    map[string]any{"id": "e2", "type": "Entry"},
		"fields": map[string]any{"title": "t"},
	}
	id, kind, ok = contentful.LinkID(inlined)
	if !ok || id != "e2" || kind != "Entry" {
		t.Fatalf("LinkID inlined = %q %q %v", id, kind, ok)
	}

	if _, _, ok := contentful.LinkID("not a link"); ok {
		t.Fatal("expected ok=false for non-map value")
	}
	if _, _, ok := contentful.LinkID(map[string]any{"foo": "bar"}); ok {
		t.Fatal("expected ok=false for map without sys")
	}
}

func TestResolveEntryValueSupportsBothShapes(t *testing.T) {
	includes := contentful.Includes{
		Entry: []contentful.Entry{entryWithTitle("linked", "resolved")},
	}

	stub := map[string]any{
		"sys": map[string]any{"id": "linked", "type": "Link", "linkType": "Entry"},
	}
	if got := contentful.ResolveEntryValue(stub, includes, nil); got == nil || got.FieldString("title") != "resolved" {
		t.Fatalf("stub resolution failed: %+v", got)
	}

	inlined := map[string]any{
		"sys":    map[string]any{"id": "inline", "type": "Entry"},
		"fields": map[string]any{"title": "already here"},
	}
	if got := contentful.ResolveEntryValue(inlined, includes, nil); got == nil || got.FieldString("title") != "already here" {
		t.Fatalf("inlined resolution failed: %+v", got)
	}

	if got := contentful.ResolveEntryValue(nil, includes, nil); got != nil {
		t.Fatalf("expected nil for nil value got %+v", got)
	}
}

func TestFieldAliasPriority(t *testing.T) {
	entry := &contentful.Entry{
		Fields: map[string]any{
			"headline": map[string]any{"en-US": "second choice"},
			"heading":  map[string]any{"en-US": "first choice"},
		},
	}
	if got := entry.FieldAliasString("heading", "headline"); got != "first choice" {
		t.Fatalf("alias priority broken: %q", got)
	}
	if got := entry.FieldAliasString("missing", "headline"); got != "second choice" {
		t.Fatalf("alias fallback broken: %q", got)
	}
	if got := entry.FieldAliasString("nope", "nada"); got != "" {
		t.Fatalf("expected empty string got %q", got)
	}
}
