package contentful

import "strings"

// ResolveEntry finds the full record for the given identifier, searching the
// directly-returned items before the includes index. Items may carry more
// complete data, hence the ordering; identifiers are globally unique so the
// two pools otherwise merge into one flat lookup space. A missing reference
// returns nil and callers omit that piece of content.
func ResolveEntry(id string, includes Includes, items []Entry) *Entry {
	if id == "" {
		return nil
	}
	for i := range items {
		if items[i].Sys.ID == id {
			return &items[i]
		}
	}
	for i := range includes.Entry {
		if includes.Entry[i].Sys.ID == id {
			return &includes.Entry[i]
		}
	}
	return nil
}

// ResolveAsset finds the full asset record for the given identifier in the
// includes index. Returns nil when absent.
func ResolveAsset(id string, includes Includes) *Asset {
	if id == "" {
		return nil
	}
	for i := range includes.Asset {
		if includes.Asset[i].Sys.ID == id {
			return &includes.Asset[i]
		}
	}
	return nil
}

// AssetURL extracts the binary file URL from a resolved asset, normalizing a
// protocol-relative URL to https. Returns "" when the asset or its file
// payload is absent.
func AssetURL(asset *Asset) string {
	if asset == nil {
		return ""
	}
	file, _ := asset.Fields["file"].(map[string]any)
	if file == nil {
		return ""
	}
	if _, ok := file["url"]; !ok {
		// Locale-wrapped payloads carry the real file map one level down.
		file, _ = Unwrap(file).(map[string]any)
		if file == nil {
			return ""
		}
	}
	url := UnwrapString(file["url"])
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

// LinkID reads the target identifier and kind ("Entry" or "Asset") out of a
// link stub or an inlined record. ok is false when the value carries no sys
// identity at all.
func LinkID(v any) (id string, kind string, ok bool) {
	m := UnwrapMap(v)
	if m == nil {
		return "", "", false
	}
	sys, _ := m["sys"].(map[string]any)
	if sys == nil {
		return "", "", false
	}
	id, _ = sys["id"].(string)
	if id == "" {
		return "", "", false
	}
	kind, _ = sys["linkType"].(string)
	if kind == "" {
		// Inlined records declare their kind directly.
		kind, _ = sys["type"].(string)
	}
	return id, kind, true
}

// ResolveEntryValue resolves a field value that is either a link stub or an
// inlined entry. Both shapes must be supported: embedded nodes sometimes
// arrive fully populated.
func ResolveEntryValue(v any, includes Includes, items []Entry) *Entry {
	m := UnwrapMap(v)
	if m == nil {
		return nil
	}
	if fields, ok := m["fields"].(map[string]any); ok && len(fields) > 0 {
		return EntryFromMap(m)
	}
	id, _, ok := LinkID(m)
	if !ok {
		return nil
	}
	return ResolveEntry(id, includes, items)
}

// ResolveAssetValue resolves a field value that is either an asset link stub
// or an inlined asset record.
func ResolveAssetValue(v any, includes Includes) *Asset {
	m := UnwrapMap(v)
	if m == nil {
		return nil
	}
	if fields, ok := m["fields"].(map[string]any); ok && len(fields) > 0 {
		return AssetFromMap(m)
	}
	id, _, ok := LinkID(m)
	if !ok {
		return nil
	}
	return ResolveAsset(id, includes)
}
