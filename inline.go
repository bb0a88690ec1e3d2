package markdown

import "strings"

// inline resolves content and wraps it with the element delimiters.
func (b *Builder) inline(tag Tag, prefix, suffix string, content []any) (*Node, error) {
	text, escaped, err := b.resolve(tag, content)
	if err != nil {
		return nil, err
	}

	return newNode(tag, prefix+text+suffix, escaped), nil
}

// Text returns an escaped plain-text fragment.
func (b *Builder) Text(text string) *Node {
	return newNode(TextTag, Escape(text), true)
}

// Empty returns an empty fragment, useful as a neutral placeholder.
func (b *Builder) Empty() *Node {
	return newNode(TextTag, "", true)
}

// LineBreak returns a hard line break, two trailing spaces and a newline.
func (b *Builder) LineBreak() *Node {
	return newNode(LineBreakTag, "  \n", true)
}

func (b *Builder) Bold(content ...any) (*Node, error) {
	return b.inline(BoldTag, "**", "**", content)
}

func (b *Builder) Italic(content ...any) (*Node, error) {
	return b.inline(ItalicTag, "_", "_", content)
}

func (b *Builder) Strikethrough(content ...any) (*Node, error) {
	return b.inline(StrikethroughTag, "~~", "~~", content)
}

// Code returns an inline code span. Code content is inherently literal in
// markdown, so it is embedded verbatim and the span still counts as escaped.
// The backtick fence is one longer than the longest backtick run inside.
func (b *Builder) Code(text string) *Node {
	fence := codeFence(text, 1)
	return newNode(CodeTag, fence+text+fence, true)
}

// Link returns an inline link. The destination is always percent-encoded,
// only the link text participates in escaping and nesting rules.
func (b *Builder) Link(url string, content ...any) (*Node, error) {
	return b.inline(LinkTag, "[", "]("+escapeURL(url)+")", content)
}

// ReferenceLink returns a reference-style link, the matching definition is
// produced by LinkReference.
func (b *Builder) ReferenceLink(ref string, content ...any) (*Node, error) {
	return b.inline(ReferenceLinkTag, "[", "]["+escapeURL(ref)+"]", content)
}

func (b *Builder) Image(alt, url string) *Node {
	return newNode(ImageTag, "!["+Escape(alt)+"]("+escapeURL(url)+")", true)
}

// TitledImage returns an image with a hover title appended after the
// destination. An empty title renders the same as Image.
func (b *Builder) TitledImage(alt, url, title string) *Node {
	node := b.Image(alt, url)
	if title == "" {
		return node
	}

	return newNode(ImageTag, node.text+" \""+Escape(title)+"\"", true)
}

// LinkReference returns the definition line of a reference-style link.
func (b *Builder) LinkReference(ref, url string) *Node {
	return newNode(LinkReferenceTag, "["+ref+"]: "+escapeURL(url), true)
}

// codeFence returns a run of backticks at least min long and longer than any
// backtick run inside text, so the fence cannot be terminated early.
func codeFence(text string, min int) string {
	longest, run := 0, 0
	for i := 0; i < len(text); i++ {
		if text[i] != '`' {
			run = 0
			continue
		}

		if run++; run > longest {
			longest = run
		}
	}

	size := longest + 1
	if size < min {
		size = min
	}

	return strings.Repeat("`", size)
}
