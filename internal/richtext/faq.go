package richtext

import "strings"

// FAQPair is a derived question/answer pair scanned from a document's
// top-level nodes.
type FAQPair struct {
	Question string
	Answer   string
}

// ExtractFAQPairs scans the document's top-level nodes: a heading (levels
// 2-6) opens a new pair whose question is the heading's flattened text;
// subsequent paragraph and list nodes accumulate space-joined answer parts
// until the next heading or end of document. A pair is only emitted with a
// non-empty question and at least one answer part, so a trailing heading
// with no following content is dropped. List nodes continue answers but
// never start a question; content before the first heading is ignored.
func ExtractFAQPairs(doc *Document) []FAQPair {
	if doc == nil {
		return nil
	}

	var pairs []FAQPair
	question := ""
	var answers []string

	flush := func() {
		if question != "" && len(answers) > 0 {
			pairs = append(pairs, FAQPair{
				Question: question,
				Answer:   strings.Join(answers, " "),
			})
		}
		question = ""
		answers = nil
	}

	for _, node := range doc.Content {
		switch {
		case node.IsHeading():
			flush()
			question = strings.TrimSpace(FlattenText(node))
		case node.NodeType == NodeParagraph,
			node.NodeType == NodeUnorderedList,
			node.NodeType == NodeOrderedList:
			if question == "" {
				continue
			}
			if part := strings.TrimSpace(FlattenText(node)); part != "" {
				answers = append(answers, part)
			}
		}
	}
	flush()

	return pairs
}
