package seo

import (
	"time"

	"github.com/goliatone/go-sitegen/internal/contentful"
)

// Metadata is the projected view of a resolved SEO component entity.
// It is recomputed fresh per page render and never cached.
type Metadata struct {
	Title        string
	Description  string
	CanonicalURL string
	Noindex      bool
	Nofollow     bool
	ShareImages  []string
}

// FromEntry projects an SEO component entity into Metadata. A nil entity
// yields the zero value; share-image references resolve element-wise and
// unresolvable elements are skipped, not failed.
func FromEntry(entry *contentful.Entry, includes contentful.Includes) Metadata {
	if entry == nil {
		return Metadata{}
	}

	meta := Metadata{
		Title:        entry.FieldAliasString("title", "metaTitle", "seoTitle"),
		Description:  entry.FieldAliasString("description", "metaDescription", "seoDescription"),
		CanonicalURL: entry.FieldAliasString("canonicalUrl", "canonical_url", "canonical"),
		Noindex:      contentful.UnwrapBool(entry.FieldAlias("noindex", "noIndex")),
		Nofollow:     contentful.UnwrapBool(entry.FieldAlias("nofollow", "noFollow")),
	}

	for _, item := range contentful.UnwrapSlice(entry.FieldAlias("shareImages", "share_images", "images")) {
		if url := contentful.AssetURL(contentful.ResolveAssetValue(item, includes)); url != "" {
			meta.ShareImages = append(meta.ShareImages, url)
		}
	}

	return meta
}

// Author is a resolved author profile.
type Author struct {
	Name        string
	AvatarURL   string
	Bio         string
	RoleCompany string
}

// AuthorFromEntry projects an author entity. Name is the only hard-required
// field: without it the author is treated as absent and nil is returned.
func AuthorFromEntry(entry *contentful.Entry, includes contentful.Includes) *Author {
	if entry == nil {
		return nil
	}
	name := entry.FieldAliasString("name", "fullName")
	if name == "" {
		return nil
	}
	return &Author{
		Name:        name,
		AvatarURL:   contentful.AssetURL(contentful.ResolveAssetValue(entry.FieldAlias("avatar", "image", "photo"), includes)),
		Bio:         entry.FieldAliasString("bio", "biography"),
		RoleCompany: entry.FieldAliasString("roleCompany", "role_company", "role"),
	}
}

// FeaturedImageURL resolves the page's featured image to a public URL,
// trying the camelCase alias before the snake_case one. Returns "" when
// unresolved.
func FeaturedImageURL(entry *contentful.Entry, includes contentful.Includes) string {
	if entry == nil {
		return ""
	}
	return contentful.AssetURL(contentful.ResolveAssetValue(entry.FieldAlias("featuredImage", "featured_image"), includes))
}

// FormatPublishedDate renders an ISO date as a long-form human date
// ("January 2, 2006"). Unparsable or absent input yields "", never an error.
func FormatPublishedDate(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return ""
}
