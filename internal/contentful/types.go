package contentful

// SysLink identifies a record or points at one. A link stub carries only
// Type "Link" plus LinkType ("Entry" or "Asset") and the target ID; a full
// record carries Type "Entry"/"Asset" and, for entries, the content type.
type SysLink struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	LinkType string `json:"linkType,omitempty"`
}

// ContentTypeRef wraps the content-type link attached to full entries.
type ContentTypeRef struct {
	Sys SysLink `json:"sys"`
}

// Sys carries record identity and bookkeeping metadata.
type Sys struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	LinkType    string          `json:"linkType,omitempty"`
	ContentType *ContentTypeRef `json:"contentType,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	UpdatedAt   string          `json:"updatedAt,omitempty"`
}

// Entry is an opaque content record: identity plus a weakly-typed field map.
// Field values are scalars, locale maps, link stubs, arrays of link stubs,
// or rich-text documents; every read goes through Unwrap.
type Entry struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// TypeID returns the declared content-type identifier, or "" when the entry
// carries none (link stubs, assets).
func (e *Entry) TypeID() string {
	if e == nil || e.Sys.ContentType == nil {
		return ""
	}
	return e.Sys.ContentType.Sys.ID
}

// Field unwraps the named field value.
func (e *Entry) Field(name string) any {
	if e == nil {
		return nil
	}
	return Unwrap(e.Fields[name])
}

// FieldString unwraps the named field and asserts it to a string.
func (e *Entry) FieldString(name string) string {
	s, _ := e.Field(name).(string)
	return s
}

// FieldAlias tries each alias in priority order and returns the first
// non-nil unwrapped value. Logical fields with several accepted names
// (body vs content vs richText) resolve through this.
func (e *Entry) FieldAlias(aliases ...string) any {
	if e == nil {
		return nil
	}
	for _, alias := range aliases {
		if v := Unwrap(e.Fields[alias]); v != nil {
			return v
		}
	}
	return nil
}

// FieldAliasString is FieldAlias restricted to non-empty strings.
func (e *Entry) FieldAliasString(aliases ...string) string {
	if e == nil {
		return ""
	}
	for _, alias := range aliases {
		if s, ok := Unwrap(e.Fields[alias]).(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Asset is a binary media record whose file payload lives under the
// "file" field.
type Asset struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// Includes is the transitive-inclusion index returned alongside a query,
// split by record kind.
type Includes struct {
	Entry []Entry `json:"Entry,omitempty"`
	Asset []Asset `json:"Asset,omitempty"`
}

// Collection is a list-query response: directly-returned items plus the
// includes index. Items and includes together form the entity pool for one
// resolution pass; the pool is read-only for the duration of a render.
type Collection struct {
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Items    []Entry  `json:"items"`
	Includes Includes `json:"includes"`
}

// EntryFromMap rebuilds an Entry from a raw field value, supporting nodes
// that inline a full record instead of a link stub.
func EntryFromMap(m map[string]any) *Entry {
	if len(m) == 0 {
		return nil
	}
	entry := &Entry{Fields: map[string]any{}}
	if sys, ok := m["sys"].(map[string]any); ok {
		entry.Sys = sysFromMap(sys)
	}
	if fields, ok := m["fields"].(map[string]any); ok {
		entry.Fields = fields
	}
	if entry.Sys.ID == "" && len(entry.Fields) == 0 {
		return nil
	}
	return entry
}

// AssetFromMap rebuilds an Asset from a raw field value.
func AssetFromMap(m map[string]any) *Asset {
	entry := EntryFromMap(m)
	if entry == nil {
		return nil
	}
	return &Asset{Sys: entry.Sys, Fields: entry.Fields}
}

func sysFromMap(m map[string]any) Sys {
	sys := Sys{}
	sys.ID, _ = m["id"].(string)
	sys.Type, _ = m["type"].(string)
	sys.LinkType, _ = m["linkType"].(string)
	sys.CreatedAt, _ = m["createdAt"].(string)
	sys.UpdatedAt, _ = m["updatedAt"].(string)
	if ct, ok := m["contentType"].(map[string]any); ok {
		if ctSys, ok := ct["sys"].(map[string]any); ok {
			ref := &ContentTypeRef{}
			ref.Sys.ID, _ = ctSys["id"].(string)
			ref.Sys.Type, _ = ctSys["type"].(string)
			ref.Sys.LinkType, _ = ctSys["linkType"].(string)
			sys.ContentType = ref
		}
	}
	return sys
}
