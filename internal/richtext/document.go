package richtext

import "github.com/goliatone/go-sitegen/internal/contentful"

// Node type identifiers used by the rich-text document tree.
const (
	NodeDocument            = "document"
	NodeParagraph           = "paragraph"
	NodeHeading2            = "heading-2"
	NodeHeading3            = "heading-3"
	NodeHeading4            = "heading-4"
	NodeHeading5            = "heading-5"
	NodeHeading6            = "heading-6"
	NodeOrderedList         = "ordered-list"
	NodeUnorderedList       = "unordered-list"
	NodeListItem            = "list-item"
	NodeBlockquote          = "blockquote"
	NodeHR                  = "hr"
	NodeHyperlink           = "hyperlink"
	NodeText                = "text"
	NodeEmbeddedAssetBlock  = "embedded-asset-block"
	NodeEmbeddedEntryBlock  = "embedded-entry-block"
	NodeEmbeddedEntryInline = "embedded-entry-inline"
)

// Mark identifiers attached to text runs.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkCode      = "code"
)

// Node is one vertex of the recursive document tree. Traversal is document
// order; embedded entry nodes are the only extension point, every other
// node kind renders through the base renderer.
type Node struct {
	NodeType string
	Value    string
	Marks    []string
	Data     map[string]any
	Content  []*Node
}

// Document is the root of a rich-text tree.
type Document struct {
	Content []*Node
}

// IsHeading reports whether the node is a heading of level 2-6.
func (n *Node) IsHeading() bool {
	if n == nil {
		return false
	}
	switch n.NodeType {
	case NodeHeading2, NodeHeading3, NodeHeading4, NodeHeading5, NodeHeading6:
		return true
	}
	return false
}

// FromValue decodes a raw field value into a Document. The value may be
// locale-wrapped. Returns nil when the value is not a rich-text document.
func FromValue(v any) *Document {
	m := contentful.UnwrapMap(v)
	if m == nil {
		return nil
	}
	nodeType, _ := m["nodeType"].(string)
	if nodeType != NodeDocument {
		return nil
	}
	return &Document{Content: nodesFromValue(m["content"])}
}

func nodesFromValue(v any) []*Node {
	raw, _ := v.([]any)
	if len(raw) == 0 {
		return nil
	}
	nodes := make([]*Node, 0, len(raw))
	for _, item := range raw {
		if node := nodeFromMap(item); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func nodeFromMap(v any) *Node {
	m, _ := v.(map[string]any)
	if m == nil {
		return nil
	}
	node := &Node{}
	node.NodeType, _ = m["nodeType"].(string)
	if node.NodeType == "" {
		return nil
	}
	node.Value, _ = m["value"].(string)
	node.Data, _ = m["data"].(map[string]any)
	node.Content = nodesFromValue(m["content"])
	if marks, ok := m["marks"].([]any); ok {
		for _, mark := range marks {
			markMap, _ := mark.(map[string]any)
			if markMap == nil {
				continue
			}
			if markType, _ := markMap["type"].(string); markType != "" {
				node.Marks = append(node.Marks, markType)
			}
		}
	}
	return node
}

// Target returns the embedded record reference carried by the node, when any.
func (n *Node) Target() any {
	if n == nil || n.Data == nil {
		return nil
	}
	return n.Data["target"]
}
