package markdown

import (
	"fmt"
	"strconv"
	"strings"
)

// Task is a single checklist entry. Text follows the same content rules as a
// list item.
type Task struct {
	Text any
	Done bool
}

func (b *Builder) BulletList(items ...any) (*Node, error) {
	text, escaped, err := b.listItems(BulletListTag, items, 0, 1, nil)
	if err != nil {
		return nil, err
	}

	return newNode(BulletListTag, text, escaped), nil
}

func (b *Builder) OrderedList(items ...any) (*Node, error) {
	return b.OrderedListFrom(1, items...)
}

// OrderedListFrom returns an ordered list numbered from start.
func (b *Builder) OrderedListFrom(start int, items ...any) (*Node, error) {
	if start < 1 {
		return nil, fmt.Errorf("ordered list must start from a positive number, got %d: %w", start, ErrInvalidValue)
	}

	text, escaped, err := b.listItems(OrderedListTag, items, 0, start, nil)
	if err != nil {
		return nil, err
	}

	return newNode(OrderedListTag, text, escaped), nil
}

// Checklist returns a task list with a checkbox per entry.
func (b *Builder) Checklist(tasks ...Task) (*Node, error) {
	items := make([]any, len(tasks))
	done := make([]bool, len(tasks))
	for i, task := range tasks {
		items[i] = task.Text
		done[i] = task.Done
	}

	text, escaped, err := b.listItems(ChecklistTag, items, 0, 1, done)
	if err != nil {
		return nil, err
	}

	return newNode(ChecklistTag, text, escaped), nil
}

// listItems renders one level of a list. An item that is itself a []any
// becomes a nested list indented under the preceding item, an item that is a
// list node is spliced in the same way at the deeper level.
func (b *Builder) listItems(tag Tag, items []any, level, start int, done []bool) (string, bool, error) {
	indent := strings.Repeat(listIndent(tag), level)
	lines := make([]string, 0, len(items))
	escaped := true
	number := start

	for i, item := range items {
		if item == nil {
			continue
		}

		if node, ok := item.(*Node); ok && node == nil {
			continue
		}

		if sub, ok := item.([]any); ok {
			nested, esc, err := b.listItems(tag, sub, level+1, 1, nil)
			if err != nil {
				return "", false, err
			}

			lines = append(lines, nested)
			if !esc {
				escaped = false
			}

			continue
		}

		if node, ok := item.(*Node); ok && node.kind == ContainerKind {
			if !accepts(tag, node.tag) {
				return "", false, fmt.Errorf("%s cannot contain %s: %w", tag, node.tag, ErrInvalidNesting)
			}

			lines = append(lines, indentLines(node.text, indent+listIndent(tag)))
			if !node.escaped {
				escaped = false
			}

			continue
		}

		text, esc, err := b.resolve(tag, []any{item})
		if err != nil {
			return "", false, err
		}

		lines = append(lines, indent+b.listMarker(tag, number, done, i)+text)
		if !esc {
			escaped = false
		}

		number++
	}

	return strings.Join(lines, "\n"), escaped, nil
}

// listIndent returns the indentation unit for one nesting level, the width
// of the marker above, so renderers read indented lines as a sub-list rather
// than a sibling.
func listIndent(tag Tag) string {
	if tag == OrderedListTag {
		return "   "
	}

	return "  "
}

func (b *Builder) listMarker(tag Tag, number int, done []bool, index int) string {
	switch tag {
	case OrderedListTag:
		return strconv.Itoa(number) + ". "
	case ChecklistTag:
		if index < len(done) && done[index] {
			return "- [x] "
		}

		return "- [ ] "
	default:
		return "- "
	}
}

func indentLines(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}

	return strings.Join(lines, "\n")
}
