package markdown

import "github.com/shurcooL/sanitized_anchor_name"

// Anchor returns the in-page fragment a rendered heading is addressable
// with, in the form GitHub assigns heading ids: "#section-title".
func Anchor(heading string) string {
	return "#" + sanitized_anchor_name.Create(heading)
}

// AnchorLink returns a link to a heading elsewhere in the same document,
// typically used to build a table of contents.
func (b *Builder) AnchorLink(heading string) *Node {
	return newNode(LinkTag, "["+Escape(heading)+"]("+Anchor(heading)+")", true)
}
