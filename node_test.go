package markdown_test

import (
	"errors"
	"testing"

	"github.com/eolymp/go-markdown"
)

func TestNodeKinds(t *testing.T) {
	heading, err := markdown.Heading(1, "Title")
	if err != nil {
		t.Fatal("unable to build heading:", err)
	}

	list, err := markdown.BulletList("one")
	if err != nil {
		t.Fatal("unable to build list:", err)
	}

	tt := []struct {
		name string
		node *markdown.Node
		kind markdown.Kind
		tag  markdown.Tag
	}{
		{name: "text", node: markdown.Text("x"), kind: markdown.InlineKind, tag: markdown.TextTag},
		{name: "code", node: markdown.Code("x"), kind: markdown.InlineKind, tag: markdown.CodeTag},
		{name: "heading", node: heading, kind: markdown.BlockKind, tag: markdown.HeadingTag},
		{name: "list", node: list, kind: markdown.ContainerKind, tag: markdown.BulletListTag},
		{name: "document", node: markdown.Document(heading, list), kind: markdown.ContainerKind, tag: markdown.DocumentTag},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if tc.node.Kind() != tc.kind {
				t.Errorf("Kind does not match: want %v, got %v", tc.kind, tc.node.Kind())
			}

			if tc.node.Tag() != tc.tag {
				t.Errorf("Tag does not match: want %v, got %v", tc.tag, tc.node.Tag())
			}
		})
	}
}

func TestInvalidNesting(t *testing.T) {
	paragraph, err := markdown.Paragraph("body")
	if err != nil {
		t.Fatal("unable to build paragraph:", err)
	}

	image := markdown.Image("alt", "pic.png")

	strike, err := markdown.Strikethrough("gone")
	if err != nil {
		t.Fatal("unable to build strikethrough:", err)
	}

	link, err := markdown.Link("https://e.com", "text")
	if err != nil {
		t.Fatal("unable to build link:", err)
	}

	tt := []struct {
		name  string
		build func() (*markdown.Node, error)
	}{
		{name: "paragraph in paragraph", build: func() (*markdown.Node, error) { return markdown.Paragraph(paragraph) }},
		{name: "paragraph in heading", build: func() (*markdown.Node, error) { return markdown.Heading(2, paragraph) }},
		{name: "image in bold", build: func() (*markdown.Node, error) { return markdown.Bold(image) }},
		{name: "strikethrough in strikethrough", build: func() (*markdown.Node, error) { return markdown.Strikethrough(strike) }},
		{name: "link in link text", build: func() (*markdown.Node, error) { return markdown.Link("https://e.com", link) }},
		{name: "paragraph in table cell", build: func() (*markdown.Node, error) { return markdown.Table([]any{paragraph}) }},
		{name: "code block in list item", build: func() (*markdown.Node, error) { return markdown.BulletList("one", markdown.CodeBlock("x", "")) }},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.build(); !errors.Is(err, markdown.ErrInvalidNesting) {
				t.Errorf("error does not match: want ErrInvalidNesting, got %v", err)
			}
		})
	}
}

// blockquote is the one block allowed to wrap other blocks
func TestBlockquoteAllowsBlockChildren(t *testing.T) {
	paragraph, err := markdown.Paragraph("quoted")
	if err != nil {
		t.Fatal("unable to build paragraph:", err)
	}

	if _, err := markdown.Blockquote(paragraph); err != nil {
		t.Errorf("blockquote rejected a paragraph: %v", err)
	}
}

func TestInvalidContentType(t *testing.T) {
	if _, err := markdown.Bold(42); !errors.Is(err, markdown.ErrInvalidValue) {
		t.Errorf("error does not match: want ErrInvalidValue, got %v", err)
	}
}

// a nil node, typically what a caller holds after ignoring a constructor
// error, is treated as empty content, the same way Document skips nil
// children
func TestNilContent(t *testing.T) {
	paragraph, err := markdown.Paragraph((*markdown.Node)(nil))
	if err != nil {
		t.Fatal("unable to build paragraph:", err)
	}

	if paragraph.String() != "" {
		t.Errorf("paragraph is not empty: %#v", paragraph.String())
	}

	bold, err := markdown.Bold("a", nil, (*markdown.Node)(nil), "b")
	if err != nil {
		t.Fatal("unable to build bold:", err)
	}

	if want := "**ab**"; bold.String() != want {
		t.Errorf("Rendered markdown does not match:\nWANT:\n  %#v\nGOT:\n  %#v", want, bold.String())
	}

	quote, err := markdown.Blockquote("quoted", (*markdown.Node)(nil))
	if err != nil {
		t.Fatal("unable to build blockquote:", err)
	}

	if want := "> quoted"; quote.String() != want {
		t.Errorf("Rendered markdown does not match:\nWANT:\n  %#v\nGOT:\n  %#v", want, quote.String())
	}

	list, err := markdown.BulletList("one", (*markdown.Node)(nil), "two")
	if err != nil {
		t.Fatal("unable to build list:", err)
	}

	if want := "- one\n- two"; list.String() != want {
		t.Errorf("Rendered markdown does not match:\nWANT:\n  %#v\nGOT:\n  %#v", want, list.String())
	}
}

func TestNodeReuse(t *testing.T) {
	code := markdown.Code("fmt.Println")

	first, err := markdown.Paragraph("call ", code, " to print")
	if err != nil {
		t.Fatal("unable to build paragraph:", err)
	}

	second, err := markdown.Bold(code)
	if err != nil {
		t.Fatal("unable to build bold:", err)
	}

	if want := "call `fmt.Println` to print"; first.String() != want {
		t.Errorf("first parent does not match: want %#v, got %#v", want, first.String())
	}

	if want := "**`fmt.Println`**"; second.String() != want {
		t.Errorf("second parent does not match: want %#v, got %#v", want, second.String())
	}

	if code.String() != "`fmt.Println`" {
		t.Errorf("child changed after composition: %#v", code.String())
	}
}

// a paragraph in a list item is tolerated as plain item text
func TestParagraphAsListItem(t *testing.T) {
	paragraph, err := markdown.Paragraph("body")
	if err != nil {
		t.Fatal("unable to build paragraph:", err)
	}

	list, err := markdown.BulletList(paragraph)
	if err != nil {
		t.Fatal("unable to build list:", err)
	}

	if want := "- body"; list.String() != want {
		t.Errorf("list does not match: want %#v, got %#v", want, list.String())
	}
}
