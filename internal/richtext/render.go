package richtext

import (
	"html"
	"strings"

	"github.com/goliatone/go-sitegen/internal/contentful"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// MaxEmbedDepth bounds embedded-entry expansion. Resolution always works
// from a fixed snapshot pool, so a reference cycle re-renders the same
// content rather than looping; the guard turns that accepted risk into a
// hard stop.
const MaxEmbedDepth = 5

// EmbedRenderer renders a resolved embedded entry into an HTML fragment.
// depth is the current embed nesting level so nested rich text can carry
// the guard forward.
type EmbedRenderer func(entry *contentful.Entry, includes contentful.Includes, items []contentful.Entry, depth int) string

// Renderer walks a rich-text document and produces HTML. Standard nodes
// (paragraphs, headings, lists, quotes, marks, plain embedded assets)
// render in-package; embedded entry nodes delegate to the Embed hook.
// Inline entry embeds are promoted to block level since their targets
// (e.g. a call to action) are not meant to flow inline.
type Renderer struct {
	Embed  EmbedRenderer
	Logger interfaces.Logger
}

// NewRenderer constructs a renderer with the supplied embed hook.
func NewRenderer(embed EmbedRenderer, logger interfaces.Logger) *Renderer {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Renderer{Embed: embed, Logger: logger}
}

// Render produces the HTML for a document. A malformed document must never
// abort the surrounding page render: any panic during traversal collapses
// the whole document to the empty string.
func (r *Renderer) Render(doc *Document, includes contentful.Includes, items []contentful.Entry) string {
	return r.RenderAtDepth(doc, includes, items, 0)
}

// RenderAtDepth renders with an explicit embed nesting level. Block
// renderers re-enter here for rich text nested inside content blocks.
func (r *Renderer) RenderAtDepth(doc *Document, includes contentful.Includes, items []contentful.Entry, depth int) (out string) {
	if doc == nil {
		return ""
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger().Warn("richtext.render.recovered", "panic", rec)
			out = ""
		}
	}()

	var sb strings.Builder
	r.renderNodes(&sb, doc.Content, includes, items, depth)
	return sb.String()
}

func (r *Renderer) logger() interfaces.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return logging.NoOp()
}

func (r *Renderer) renderNodes(sb *strings.Builder, nodes []*Node, includes contentful.Includes, items []contentful.Entry, depth int) {
	for _, node := range nodes {
		r.renderNode(sb, node, includes, items, depth)
	}
}

func (r *Renderer) renderNode(sb *strings.Builder, node *Node, includes contentful.Includes, items []contentful.Entry, depth int) {
	if node == nil {
		return
	}
	switch node.NodeType {
	case NodeDocument:
		r.renderNodes(sb, node.Content, includes, items, depth)
	case NodeParagraph:
		r.wrap(sb, "p", node, includes, items, depth)
	case NodeHeading2:
		r.wrap(sb, "h2", node, includes, items, depth)
	case NodeHeading3:
		r.wrap(sb, "h3", node, includes, items, depth)
	case NodeHeading4:
		r.wrap(sb, "h4", node, includes, items, depth)
	case NodeHeading5:
		r.wrap(sb, "h5", node, includes, items, depth)
	case NodeHeading6:
		r.wrap(sb, "h6", node, includes, items, depth)
	case NodeUnorderedList:
		r.wrap(sb, "ul", node, includes, items, depth)
	case NodeOrderedList:
		r.wrap(sb, "ol", node, includes, items, depth)
	case NodeListItem:
		r.wrap(sb, "li", node, includes, items, depth)
	case NodeBlockquote:
		r.wrap(sb, "blockquote", node, includes, items, depth)
	case NodeHR:
		sb.WriteString("<hr/>")
	case NodeHyperlink:
		r.renderHyperlink(sb, node, includes, items, depth)
	case NodeText:
		sb.WriteString(renderText(node))
	case NodeEmbeddedAssetBlock:
		sb.WriteString(r.renderEmbeddedAsset(node, includes))
	case NodeEmbeddedEntryBlock, NodeEmbeddedEntryInline:
		sb.WriteString(r.renderEmbeddedEntry(node, includes, items, depth))
	default:
		// Unknown node kinds contribute nothing; siblings keep rendering.
		r.logger().Debug("richtext.render.unknown_node", "node_type", node.NodeType)
	}
}

func (r *Renderer) wrap(sb *strings.Builder, tag string, node *Node, includes contentful.Includes, items []contentful.Entry, depth int) {
	sb.WriteString("<" + tag + ">")
	r.renderNodes(sb, node.Content, includes, items, depth)
	sb.WriteString("</" + tag + ">")
}

func (r *Renderer) renderHyperlink(sb *strings.Builder, node *Node, includes contentful.Includes, items []contentful.Entry, depth int) {
	uri := ""
	if node.Data != nil {
		uri, _ = node.Data["uri"].(string)
	}
	sb.WriteString(`<a href="` + EscapeAttr(uri) + `">`)
	r.renderNodes(sb, node.Content, includes, items, depth)
	sb.WriteString("</a>")
}

func (r *Renderer) renderEmbeddedAsset(node *Node, includes contentful.Includes) string {
	asset := contentful.ResolveAssetValue(node.Target(), includes)
	url := contentful.AssetURL(asset)
	if url == "" {
		return ""
	}
	alt := ""
	if asset != nil {
		alt = contentful.UnwrapString(asset.Fields["title"])
		if alt == "" {
			alt = contentful.UnwrapString(asset.Fields["description"])
		}
	}
	return `<img src="` + EscapeAttr(url) + `" alt="` + EscapeAttr(alt) + `" loading="lazy"/>`
}

func (r *Renderer) renderEmbeddedEntry(node *Node, includes contentful.Includes, items []contentful.Entry, depth int) string {
	if r.Embed == nil {
		return ""
	}
	if depth >= MaxEmbedDepth {
		r.logger().Warn("richtext.render.max_depth", "depth", depth)
		return ""
	}
	entry := contentful.ResolveEntryValue(node.Target(), includes, items)
	if entry == nil {
		return ""
	}
	return r.Embed(entry, includes, items, depth+1)
}

func renderText(node *Node) string {
	text := html.EscapeString(node.Value)
	for _, mark := range node.Marks {
		switch mark {
		case MarkBold:
			text = "<strong>" + text + "</strong>"
		case MarkItalic:
			text = "<em>" + text + "</em>"
		case MarkUnderline:
			text = "<u>" + text + "</u>"
		case MarkCode:
			text = "<code>" + text + "</code>"
		}
	}
	return text
}

// EscapeAttr escapes text for an HTML attribute context. The attribute
// context needs single quotes covered too; html.EscapeString already escapes
// both quote kinds, so body and attribute escaping share an implementation
// and the distinct name keeps call sites honest about context.
func EscapeAttr(s string) string {
	return html.EscapeString(s)
}
