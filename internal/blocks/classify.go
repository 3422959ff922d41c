package blocks

import (
	"strings"

	slug "github.com/goliatone/go-slug"
	"github.com/goliatone/go-sitegen/internal/contentful"
	"github.com/goliatone/go-sitegen/internal/richtext"
)

// Default content-type identifiers for the two known block archetypes.
const (
	DefaultContentBlockType = "contentBlock"
	DefaultCTABlockType     = "ctaBlock"
)

// Field alias lists in priority order: first defined value wins. The content
// model is weakly typed, so each logical field accepts several names.
var (
	defaultBodyAliases  = []string{"content", "body", "richText", "rich_text"}
	headingAliases      = []string{"heading", "headline", "title"}
	descriptionAliases  = []string{"description", "subheading", "text"}
	buttonLabelAliases  = []string{"buttonLabel", "button_label", "ctaLabel", "label"}
	buttonURLAliases    = []string{"buttonUrl", "button_url", "ctaUrl", "link", "url"}
	imageAliases        = []string{"image", "media", "featuredImage"}
	captionAliases      = []string{"caption", "imageCaption"}
	fullWidthAliases    = []string{"fullWidth", "full_width"}
	styleAliases        = []string{"style", "blockStyle", "variant"}
)

// styleWhitelist maps the normalized block-style tag to its CSS modifier.
// Anything unrecognized falls back to "text".
var styleWhitelist = map[string]struct{}{
	"text":  {},
	"image": {},
	"quote": {},
	"list":  {},
	"code":  {},
	"cta":   {},
}

// Config carries the configurable type identifiers and alias overrides.
type Config struct {
	ContentBlockType string
	CTABlockType     string
	BodyAliases      []string
}

func (c Config) contentBlockType() string {
	if c.ContentBlockType != "" {
		return c.ContentBlockType
	}
	return DefaultContentBlockType
}

func (c Config) ctaBlockType() string {
	if c.CTABlockType != "" {
		return c.CTABlockType
	}
	return DefaultCTABlockType
}

func (c Config) bodyAliases() []string {
	if len(c.BodyAliases) > 0 {
		return c.BodyAliases
	}
	return defaultBodyAliases
}

// Block is the closed set of block archetypes a resolved entity can
// classify into. Rendering matches exhaustively over these variants.
type Block interface {
	isBlock()
}

// RichContent is a unit of page body content: a rich-text payload plus an
// optional figure.
type RichContent struct {
	Body      *richtext.Document
	ImageRef  any
	Caption   string
	FullWidth bool
	Style     string
}

// CTA is a call-to-action block.
type CTA struct {
	Heading     string
	Description string
	ButtonLabel string
	ButtonURL   string
}

// Unknown captures any declared type outside the two known archetypes.
// Unknown blocks render to the empty string, never an error.
type Unknown struct {
	TypeID string
}

func (RichContent) isBlock() {}
func (CTA) isBlock()         {}
func (Unknown) isBlock()     {}

// Classify inspects the entity's declared type tag (case-insensitively)
// and projects its weakly-typed fields into one of the block variants.
func Classify(entry *contentful.Entry, cfg Config) Block {
	typeID := ""
	if entry != nil {
		typeID = entry.TypeID()
	}

	switch {
	case strings.EqualFold(typeID, cfg.contentBlockType()):
		return RichContent{
			Body:      richtext.FromValue(entry.FieldAlias(cfg.bodyAliases()...)),
			ImageRef:  entry.FieldAlias(imageAliases...),
			Caption:   entry.FieldAliasString(captionAliases...),
			FullWidth: contentful.UnwrapBool(entry.FieldAlias(fullWidthAliases...)),
			Style:     normalizeStyle(entry.FieldAliasString(styleAliases...)),
		}
	case strings.EqualFold(typeID, cfg.ctaBlockType()):
		return CTA{
			Heading:     entry.FieldAliasString(headingAliases...),
			Description: entry.FieldAliasString(descriptionAliases...),
			ButtonLabel: entry.FieldAliasString(buttonLabelAliases...),
			ButtonURL:   entry.FieldAliasString(buttonURLAliases...),
		}
	default:
		return Unknown{TypeID: typeID}
	}
}

// normalizeStyle lowers a free-form style tag to kebab-case and matches it
// against the whitelist, defaulting to "text".
func normalizeStyle(style string) string {
	style = strings.TrimSpace(style)
	if style == "" {
		return "text"
	}
	normalized, err := slug.Normalize(style)
	if err != nil || normalized == "" {
		return "text"
	}
	if _, ok := styleWhitelist[normalized]; !ok {
		return "text"
	}
	return normalized
}
