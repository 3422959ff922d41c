package blocks

import (
	"html"
	"strings"

	"github.com/goliatone/go-sitegen/internal/contentful"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/richtext"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Renderer turns classified blocks into self-contained HTML fragments. It
// owns the rich-text renderer so embedded entries inside rich text recurse
// back through block rendering, bounded by the embed depth guard.
type Renderer struct {
	cfg    Config
	rich   *richtext.Renderer
	logger interfaces.Logger
}

// NewRenderer wires a block renderer and its mutually-recursive rich-text
// counterpart.
func NewRenderer(cfg Config, logger interfaces.Logger) *Renderer {
	if logger == nil {
		logger = logging.NoOp()
	}
	r := &Renderer{cfg: cfg, logger: logger}
	r.rich = richtext.NewRenderer(r.renderEmbedded, logger)
	return r
}

// RenderDocument renders a standalone rich-text document (e.g. a post body)
// with this renderer's embedded-entry handling.
func (r *Renderer) RenderDocument(doc *richtext.Document, includes contentful.Includes, items []contentful.Entry) string {
	return r.rich.Render(doc, includes, items)
}

// Render produces the HTML fragment for a resolved entity, or the empty
// string for unknown types and empty blocks.
func (r *Renderer) Render(entry *contentful.Entry, includes contentful.Includes, items []contentful.Entry) string {
	return r.renderAtDepth(entry, includes, items, 0)
}

// renderEmbedded adapts block rendering to the rich-text embed hook.
func (r *Renderer) renderEmbedded(entry *contentful.Entry, includes contentful.Includes, items []contentful.Entry, depth int) string {
	return r.renderAtDepth(entry, includes, items, depth)
}

func (r *Renderer) renderAtDepth(entry *contentful.Entry, includes contentful.Includes, items []contentful.Entry, depth int) string {
	switch block := Classify(entry, r.cfg).(type) {
	case RichContent:
		return r.renderRichContent(block, includes, items, depth)
	case CTA:
		return renderCTA(block)
	case Unknown:
		r.logger.Debug("blocks.render.unknown_type", "content_type", block.TypeID)
		return ""
	}
	return ""
}

func (r *Renderer) renderRichContent(block RichContent, includes contentful.Includes, items []contentful.Entry, depth int) string {
	body := r.rich.RenderAtDepth(block.Body, includes, items, depth)
	figure := r.renderFigure(block, includes)

	// No body and no image: never emit an empty wrapper shell.
	if body == "" && figure == "" {
		return ""
	}

	classes := "content-block content-block--" + block.Style
	if block.FullWidth {
		classes += " content-block--full"
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + richtext.EscapeAttr(classes) + `">`)
	sb.WriteString(body)
	sb.WriteString(figure)
	sb.WriteString("</div>")
	return sb.String()
}

func (r *Renderer) renderFigure(block RichContent, includes contentful.Includes) string {
	asset := contentful.ResolveAssetValue(block.ImageRef, includes)
	url := contentful.AssetURL(asset)
	if url == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<figure class="content-block__figure">`)
	sb.WriteString(`<img src="` + richtext.EscapeAttr(url) + `" alt="` + richtext.EscapeAttr(block.Caption) + `" loading="lazy"/>`)
	if block.Caption != "" {
		sb.WriteString(`<figcaption>` + html.EscapeString(block.Caption) + `</figcaption>`)
	}
	sb.WriteString("</figure>")
	return sb.String()
}

func renderCTA(block CTA) string {
	hasButton := block.ButtonURL != "" && block.ButtonLabel != ""
	// No heading, description, or button: never emit an empty wrapper shell.
	if block.Heading == "" && block.Description == "" && !hasButton {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div class="content-cta">`)
	if block.Heading != "" {
		sb.WriteString(`<h3 class="content-cta__heading">` + html.EscapeString(block.Heading) + `</h3>`)
	}
	if block.Description != "" {
		sb.WriteString(`<p class="content-cta__description">` + html.EscapeString(block.Description) + `</p>`)
	}
	// The anchor requires both a URL and a label; otherwise it is omitted
	// entirely while heading/description still render.
	if hasButton {
		sb.WriteString(`<a class="content-cta__button" href="` + richtext.EscapeAttr(block.ButtonURL) + `">` +
			html.EscapeString(block.ButtonLabel) + `</a>`)
	}
	sb.WriteString("</div>")
	return sb.String()
}
