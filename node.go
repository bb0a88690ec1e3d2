package markdown

type Kind int

const (
	InlineKind Kind = iota
	BlockKind
	ContainerKind
)

type Tag int

const (
	TextTag Tag = iota
	BoldTag
	ItalicTag
	CodeTag
	StrikethroughTag
	LinkTag
	ReferenceLinkTag
	ImageTag
	LineBreakTag
	ParagraphTag
	HeadingTag
	BlockquoteTag
	CodeBlockTag
	HorizontalRuleTag
	LinkReferenceTag
	DocumentTag
	BulletListTag
	OrderedListTag
	ChecklistTag
	TableTag
)

var tagNames = []string{
	TextTag:           "text",
	BoldTag:           "bold",
	ItalicTag:         "italic",
	CodeTag:           "code",
	StrikethroughTag:  "strikethrough",
	LinkTag:           "link",
	ReferenceLinkTag:  "reference_link",
	ImageTag:          "image",
	LineBreakTag:      "line_break",
	ParagraphTag:      "paragraph",
	HeadingTag:        "heading",
	BlockquoteTag:     "blockquote",
	CodeBlockTag:      "code_block",
	HorizontalRuleTag: "horizontal_rule",
	LinkReferenceTag:  "link_reference",
	DocumentTag:       "document",
	BulletListTag:     "bullet_list",
	OrderedListTag:    "ordered_list",
	ChecklistTag:      "checklist",
	TableTag:          "table",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}

	return "unknown"
}

func (t Tag) kind() Kind {
	switch t {
	case TextTag, BoldTag, ItalicTag, CodeTag, StrikethroughTag, LinkTag, ReferenceLinkTag, ImageTag, LineBreakTag:
		return InlineKind
	case DocumentTag, BulletListTag, OrderedListTag, ChecklistTag, TableTag:
		return ContainerKind
	default:
		return BlockKind
	}
}

// Node is an immutable markdown fragment. The rendered text of a node covers
// the node itself and everything composed into it, so a node can be reused in
// several parents without copying.
type Node struct {
	kind    Kind
	tag     Tag
	text    string
	escaped bool
}

func newNode(tag Tag, text string, escaped bool) *Node {
	return &Node{kind: tag.kind(), tag: tag, text: text, escaped: escaped}
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) Tag() Tag {
	return n.tag
}

// Escaped reports whether the rendered text is free of unescaped markdown
// metacharacters. Composing unescaped content anywhere into a node clears the
// flag for the whole subtree.
func (n *Node) Escaped() bool {
	return n.escaped
}

// String returns the rendered markdown text.
func (n *Node) String() string {
	return n.text
}

// accepts defines which fragments may be composed into which. Placement is
// validated when a node is built, a finished node is never revalidated.
func accepts(parent, child Tag) bool {
	switch parent {
	case BoldTag:
		return child == TextTag || child == ItalicTag || child == CodeTag || child == StrikethroughTag || child == LinkTag || child == BoldTag
	case ItalicTag:
		return child == TextTag || child == BoldTag || child == CodeTag || child == StrikethroughTag || child == LinkTag || child == ItalicTag
	case StrikethroughTag:
		// strikethrough cannot contain strikethrough
		return child == TextTag || child == BoldTag || child == ItalicTag || child == CodeTag || child == LinkTag
	case LinkTag, ReferenceLinkTag, HeadingTag:
		return child == TextTag || child == BoldTag || child == ItalicTag || child == CodeTag || child == StrikethroughTag
	case ParagraphTag:
		return accepts(LinkTag, child) || child == LinkTag || child == ReferenceLinkTag || child == ImageTag || child == LineBreakTag
	case BlockquoteTag:
		return accepts(ParagraphTag, child) || child == ParagraphTag || child == HeadingTag || child == CodeBlockTag || child == BlockquoteTag
	case BulletListTag, OrderedListTag, ChecklistTag:
		return accepts(ParagraphTag, child) || child == ParagraphTag || child == BulletListTag || child == OrderedListTag || child == ChecklistTag
	case TableTag:
		return accepts(LinkTag, child) || child == LinkTag || child == ReferenceLinkTag || child == ImageTag
	default:
		return false
	}
}
