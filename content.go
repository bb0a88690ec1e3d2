package markdown

import (
	"fmt"
	"strings"
)

// Raw marks a string which must be embedded verbatim, with no escaping
// applied. While safe mode is enabled any attempt to compose Raw content
// fails with ErrSafeMode.
type Raw string

// resolve flattens constructor arguments into rendered text. Content may mix
// plain strings (escaped on the way in), Raw strings (verbatim) and
// previously built nodes, which are validated against the nesting rules of
// the parent before their text is reused.
func (b *Builder) resolve(parent Tag, content []any) (string, bool, error) {
	var out strings.Builder
	escaped := true

	for _, item := range content {
		switch v := item.(type) {
		case nil:
			// same as an empty string
		case string:
			out.WriteString(escapeFor(parent, v))
		case Raw:
			if b.SafeMode() {
				return "", false, fmt.Errorf("%s: raw content: %w", parent, ErrSafeMode)
			}

			out.WriteString(string(v))
			escaped = false
		case *Node:
			if v == nil {
				// same as an empty string
				continue
			}

			if !accepts(parent, v.tag) {
				return "", false, fmt.Errorf("%s cannot contain %s: %w", parent, v.tag, ErrInvalidNesting)
			}

			out.WriteString(v.text)
			if !v.escaped {
				escaped = false
			}
		default:
			return "", false, fmt.Errorf("%s: content must be a string, Raw or *Node, got %T: %w", parent, item, ErrInvalidValue)
		}
	}

	return out.String(), escaped, nil
}

func escapeFor(parent Tag, text string) string {
	if parent == TableTag {
		return escapeCell(text)
	}

	return Escape(text)
}
