// Package markdown builds GitHub-flavoured markdown text from plain strings
// and composable fragments. Input text is escaped so that it renders
// literally, fragments are validated against nesting rules when they are
// composed, and the result of every constructor is an immutable node whose
// String method returns the final markdown.
//
// The package does not parse or render markdown, it only emits it.
package markdown

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrInvalidValue reports an argument outside the allowed range, such as
	// a heading level the chosen style does not support.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidNesting reports a fragment composed into a position its kind
	// is not allowed in.
	ErrInvalidNesting = errors.New("invalid nesting")

	// ErrSafeMode reports an attempt to embed raw, unescaped content while
	// safe mode is enabled.
	ErrSafeMode = errors.New("raw content is not allowed in safe mode")
)

// Builder constructs markdown fragments under an escaping policy. The zero
// value is ready to use and has safe mode disabled. A Builder may be shared
// between goroutines, the safe-mode flag is read atomically on every
// construction.
type Builder struct {
	safe atomic.Bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// SetSafeMode enables or disables safe mode. While enabled, composing Raw
// content through this builder fails with ErrSafeMode instead of producing
// unescaped output.
func (b *Builder) SetSafeMode(on bool) {
	b.safe.Store(on)
}

func (b *Builder) SafeMode() bool {
	return b.safe.Load()
}

// std is the builder behind the package-level constructors, the same way the
// log package keeps a default logger.
var std = NewBuilder()

// SetSafeMode toggles safe mode on the default builder.
func SetSafeMode(on bool) { std.SetSafeMode(on) }

// SafeMode reports whether safe mode is enabled on the default builder.
func SafeMode() bool { return std.SafeMode() }

func Text(text string) *Node { return std.Text(text) }

func Empty() *Node { return std.Empty() }

func LineBreak() *Node { return std.LineBreak() }

func Code(text string) *Node { return std.Code(text) }

func Image(alt, url string) *Node { return std.Image(alt, url) }

func TitledImage(alt, url, title string) *Node { return std.TitledImage(alt, url, title) }

func LinkReference(ref, url string) *Node { return std.LinkReference(ref, url) }

func AnchorLink(heading string) *Node { return std.AnchorLink(heading) }

func Bold(content ...any) (*Node, error) { return std.Bold(content...) }

func Italic(content ...any) (*Node, error) { return std.Italic(content...) }

func Strikethrough(content ...any) (*Node, error) { return std.Strikethrough(content...) }

func Link(url string, content ...any) (*Node, error) { return std.Link(url, content...) }

func ReferenceLink(ref string, content ...any) (*Node, error) {
	return std.ReferenceLink(ref, content...)
}

func Paragraph(content ...any) (*Node, error) { return std.Paragraph(content...) }

func Heading(level int, content ...any) (*Node, error) { return std.Heading(level, content...) }

func SetextHeading(level int, content ...any) (*Node, error) {
	return std.SetextHeading(level, content...)
}

func Blockquote(content ...any) (*Node, error) { return std.Blockquote(content...) }

func CodeBlock(text, language string) *Node { return std.CodeBlock(text, language) }

func HorizontalRule(length int, style string) (*Node, error) {
	return std.HorizontalRule(length, style)
}

func Document(children ...*Node) *Node { return std.Document(children...) }

func BulletList(items ...any) (*Node, error) { return std.BulletList(items...) }

func OrderedList(items ...any) (*Node, error) { return std.OrderedList(items...) }

func OrderedListFrom(start int, items ...any) (*Node, error) {
	return std.OrderedListFrom(start, items...)
}

func Checklist(tasks ...Task) (*Node, error) { return std.Checklist(tasks...) }

func Table(columns ...[]any) (*Node, error) { return std.Table(columns...) }

func TableFromRows(rows ...[]any) (*Node, error) { return std.TableFromRows(rows...) }

func AlignedTable(spec string, columns ...[]any) (*Node, error) {
	return std.AlignedTable(spec, columns...)
}
