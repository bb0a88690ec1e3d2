package markdown

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultRuleLength is the horizontal rule length used when callers have no
// particular width in mind.
const DefaultRuleLength = 79

func (b *Builder) Paragraph(content ...any) (*Node, error) {
	return b.inline(ParagraphTag, "", "", content)
}

// Heading returns an atx-style heading, a run of hash signs followed by the
// heading text. Levels 1 through 6 are supported.
func (b *Builder) Heading(level int, content ...any) (*Node, error) {
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("atx heading level must be between 1 and 6, got %d: %w", level, ErrInvalidValue)
	}

	text, escaped, err := b.resolve(HeadingTag, content)
	if err != nil {
		return nil, err
	}

	return newNode(HeadingTag, strings.Repeat("#", level)+" "+text, escaped), nil
}

// SetextHeading returns an underlined heading, equals signs for level 1 and
// dashes for level 2. The underline matches the display width of the heading
// text and is never shorter than three characters.
func (b *Builder) SetextHeading(level int, content ...any) (*Node, error) {
	if level < 1 || level > 2 {
		return nil, fmt.Errorf("setext heading level must be 1 or 2, got %d: %w", level, ErrInvalidValue)
	}

	text, escaped, err := b.resolve(HeadingTag, content)
	if err != nil {
		return nil, err
	}

	underline := "="
	if level == 2 {
		underline = "-"
	}

	width := runewidth.StringWidth(text)
	if width < 3 {
		width = 3
	}

	return newNode(HeadingTag, text+"\n"+strings.Repeat(underline, width), escaped), nil
}

// Blockquote returns a quoted block. Content may be inline, in which case it
// forms a single quoted paragraph, or already built blocks, which are quoted
// as separate paragraphs.
func (b *Builder) Blockquote(content ...any) (*Node, error) {
	var parts []string
	var run []any
	escaped := true

	flush := func() error {
		if len(run) == 0 {
			return nil
		}

		text, esc, err := b.resolve(BlockquoteTag, run)
		if err != nil {
			return err
		}

		parts = append(parts, text)
		if !esc {
			escaped = false
		}

		run = run[:0]
		return nil
	}

	for _, item := range content {
		node, ok := item.(*Node)
		if ok && node == nil {
			continue
		}

		if !ok || node.kind == InlineKind {
			run = append(run, item)
			continue
		}

		if !accepts(BlockquoteTag, node.tag) {
			return nil, fmt.Errorf("blockquote cannot contain %s: %w", node.tag, ErrInvalidNesting)
		}

		if err := flush(); err != nil {
			return nil, err
		}

		parts = append(parts, node.text)
		if !node.escaped {
			escaped = false
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	lines := strings.Split(strings.Join(parts, "\n\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}

	return newNode(BlockquoteTag, strings.Join(lines, "\n"), escaped), nil
}

// CodeBlock returns a code block. With a language the block is fenced and
// annotated, without one it is indented by four spaces. Content is embedded
// verbatim either way.
func (b *Builder) CodeBlock(text, language string) *Node {
	if language == "" {
		lines := strings.Split(text, "\n")
		for i := range lines {
			lines[i] = "    " + lines[i]
		}

		return newNode(CodeBlockTag, strings.Join(lines, "\n"), true)
	}

	fence := codeFence(text, 3)
	return newNode(CodeBlockTag, fence+language+"\n"+text+"\n"+fence, true)
}

// HorizontalRule returns a thematic break of the given length, drawn with
// dashes or asterisks. Markdown requires at least three characters.
func (b *Builder) HorizontalRule(length int, style string) (*Node, error) {
	if style != "-" && style != "*" {
		return nil, fmt.Errorf("rule style must be %q or %q, got %q: %w", "-", "*", style, ErrInvalidValue)
	}

	if length < 3 {
		return nil, fmt.Errorf("rule length must be at least 3, got %d: %w", length, ErrInvalidValue)
	}

	return newNode(HorizontalRuleTag, strings.Repeat(style, length), true), nil
}
