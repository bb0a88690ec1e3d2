package markdown

import "strings"

// Document joins fragments into a complete document, separated by blank
// lines so adjacent blocks do not merge. Trailing newlines of each child are
// trimmed first, which makes the result stable no matter how children were
// produced. Nil children are skipped.
func (b *Builder) Document(children ...*Node) *Node {
	parts := make([]string, 0, len(children))
	escaped := true

	for _, child := range children {
		if child == nil {
			continue
		}

		parts = append(parts, strings.TrimRight(child.text, "\n"))
		if !child.escaped {
			escaped = false
		}
	}

	return newNode(DocumentTag, strings.Join(parts, "\n\n"), escaped)
}
