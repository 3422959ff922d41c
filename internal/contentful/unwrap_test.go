package contentful_test

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-sitegen/internal/contentful"
)

func TestUnwrapScalarsPassThrough(t *testing.T) {
	cases := []any{"hello", 42.0, true, nil}
	for _, v := range cases {
		if got := contentful.Unwrap(v); got != v {
			t.Fatalf("unwrap(%v) = %v", v, got)
		}
	}
}

func TestUnwrapIdempotence(t *testing.T) {
	inputs := []any{
		"scalar",
		map[string]any{"en-US": "hello"},
		map[string]any{"en-US": "x", "fr-FR": "y"},
		[]any{"a", "b"},
	}
	for _, v := range inputs {
		once := contentful.Unwrap(v)
		twice := contentful.Unwrap(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("unwrap not idempotent for %v: %v != %v", v, once, twice)
		}
	}
}

func TestUnwrapLocaleMapIsDeterministic(t *testing.T) {
	m := map[string]any{"en-US": "x", "fr-FR": "y"}
	first := contentful.Unwrap(m)
	for i := 0; i < 50; i++ {
		if got := contentful.Unwrap(m); got != first {
			t.Fatalf("unwrap returned %v after %v", got, first)
		}
	}
	if first != "x" && first != "y" {
		t.Fatalf("unwrap returned a value outside the locale map: %v", first)
	}
}

func TestUnwrapEmptyLocaleMap(t *testing.T) {
	if got := contentful.Unwrap(map[string]any{}); got != nil {
		t.Fatalf("expected nil for empty map got %v", got)
	}
}

func TestUnwrapLinkStubPassesThrough(t *testing.T) {
	stub := map[string]any{
		"sys": map[string]any{"id": "abc", "type": "Link", "linkType": "Entry"},
	}
	got, ok := contentful.Unwrap(stub).(map[string]any)
	if !ok {
		t.Fatalf("expected map got %T", contentful.Unwrap(stub))
	}
	if !reflect.DeepEqual(got, stub) {
		t.Fatalf("link stub mutated: %v", got)
	}
}

func TestUnwrapRichTextPassesThrough(t *testing.T) {
	doc := map[string]any{
		"nodeType": "document",
		"content":  []any{},
	}
	if got := contentful.Unwrap(doc); !reflect.DeepEqual(got, doc) {
		t.Fatalf("rich text mutated: %v", got)
	}
}

func TestUnwrapLocaleWrappedLink(t *testing.T) {
	stub := map[string]any{
		"sys": map[string]any{"id": "abc", "type": "Link", "linkType": "Asset"},
	}
	wrapped := map[string]any{"en-US": stub}
	if got := contentful.Unwrap(wrapped); !reflect.DeepEqual(got, stub) {
		t.Fatalf("expected inner stub got %v", got)
	}
}

func TestUnwrapPeelsOnlyTheWrapper(t *testing.T) {
	// The value under the locale key may itself be a plain object with no
	// structural keys (an asset file payload); it must come back whole,
	// not collapsed to its own first value.
	file := map[string]any{"url": "//cdn.example.com/a.png", "fileName": "a.png"}
	wrapped := map[string]any{"en-US": file}
	got, ok := contentful.Unwrap(wrapped).(map[string]any)
	if !ok {
		t.Fatalf("expected map got %T", contentful.Unwrap(wrapped))
	}
	if !reflect.DeepEqual(got, file) {
		t.Fatalf("inner object mutated: %v", got)
	}
}

func TestUnwrapArrayPassesThrough(t *testing.T) {
	arr := []any{"one", "two"}
	if got := contentful.Unwrap(arr); !reflect.DeepEqual(got, arr) {
		t.Fatalf("array mutated: %v", got)
	}
}

func TestUnwrapHelpers(t *testing.T) {
	if got := contentful.UnwrapString(map[string]any{"en-US": "text"}); got != "text" {
		t.Fatalf("UnwrapString = %q", got)
	}
	if got := contentful.UnwrapString(42.0); got != "" {
		t.Fatalf("UnwrapString on number = %q", got)
	}
	if !contentful.UnwrapBool(map[string]any{"en-US": true}) {
		t.Fatal("UnwrapBool expected true")
	}
	if got := contentful.UnwrapSlice(map[string]any{"en-US": []any{"a"}}); len(got) != 1 {
		t.Fatalf("UnwrapSlice = %v", got)
	}
}
