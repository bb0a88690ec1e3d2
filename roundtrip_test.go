package markdown_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eolymp/go-markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// render feeds emitted markdown through a real renderer, the escaping
// contract only means something if a renderer agrees with it
func render(t *testing.T, source string) string {
	t.Helper()

	engine := goldmark.New(goldmark.WithExtensions(extension.GFM))

	buffer := bytes.NewBuffer(nil)
	if err := engine.Convert([]byte(source), buffer); err != nil {
		t.Fatal("unable to render markdown:", err)
	}

	return buffer.String()
}

func TestEscapedTextRendersLiterally(t *testing.T) {
	inputs := []string{
		"*not emphasis*",
		"_not emphasis either_",
		"**definitely not bold**",
		"mid_word_underscores",
	}

	for _, input := range inputs {
		html := render(t, markdown.Escape(input))

		if strings.Contains(html, "<em>") || strings.Contains(html, "<strong>") {
			t.Errorf("escaped %#v still triggered emphasis: %s", input, html)
		}

		if !strings.Contains(html, input) {
			t.Errorf("escaped %#v lost its text: %s", input, html)
		}
	}
}

func TestFormattedFragmentsRender(t *testing.T) {
	bold, err := markdown.Bold("loud")
	if err != nil {
		t.Fatal("unable to build bold:", err)
	}

	strike, err := markdown.Strikethrough("gone")
	if err != nil {
		t.Fatal("unable to build strikethrough:", err)
	}

	tt := []struct {
		name   string
		source string
		expect string
	}{
		{name: "bold", source: bold.String(), expect: "<strong>loud</strong>"},
		{name: "strikethrough", source: strike.String(), expect: "<del>gone</del>"},
		{name: "code", source: markdown.Code("a *= b").String(), expect: "<code>a *= b</code>"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if html := render(t, tc.source); !strings.Contains(html, tc.expect) {
				t.Errorf("rendered html does not contain %#v:\n%s", tc.expect, html)
			}
		})
	}
}

func TestEmittedTableRenders(t *testing.T) {
	table, err := markdown.Table([]any{"1", "2", "3"}, []any{"4", "5", "6"}, []any{"7", "8", "9"})
	if err != nil {
		t.Fatal("unable to build table:", err)
	}

	html := render(t, table.String())
	if !strings.Contains(html, "<table>") {
		t.Errorf("emitted table was not recognized by the renderer:\n%s", html)
	}
}

func TestEmittedDocumentRenders(t *testing.T) {
	title, err := markdown.Heading(1, "Title")
	if err != nil {
		t.Fatal("unable to build heading:", err)
	}

	body, err := markdown.Paragraph("body with *literal* stars")
	if err != nil {
		t.Fatal("unable to build paragraph:", err)
	}

	list, err := markdown.BulletList("one", "two")
	if err != nil {
		t.Fatal("unable to build list:", err)
	}

	html := render(t, markdown.Document(title, body, list).String())

	for _, expect := range []string{"<h1>", "<p>", "<ul>", "*literal*"} {
		if !strings.Contains(html, expect) {
			t.Errorf("rendered document does not contain %#v:\n%s", expect, html)
		}
	}

	if strings.Contains(html, "<em>") {
		t.Errorf("escaped stars still triggered emphasis:\n%s", html)
	}
}
