package richtext

import "strings"

// FlattenText concatenates the text runs beneath the node in document order.
func FlattenText(node *Node) string {
	if node == nil {
		return ""
	}
	var sb strings.Builder
	flattenInto(&sb, node)
	return sb.String()
}

func flattenInto(sb *strings.Builder, node *Node) {
	if node == nil {
		return
	}
	if node.NodeType == NodeText {
		sb.WriteString(node.Value)
	}
	for _, child := range node.Content {
		flattenInto(sb, child)
	}
}
