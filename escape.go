package markdown

import "strings"

// Escape returns text with every asterisk and underscore prefixed by a
// backslash, so emphasis markers render literally. The scan is a single
// left-to-right pass and never touches backslashes already present, which
// means escaping the output of Escape a second time doubles the markers.
// Callers are expected to escape raw input exactly once.
func Escape(text string) string {
	if !strings.ContainsAny(text, "*_") {
		return text
	}

	var out strings.Builder
	out.Grow(len(text) + 8)

	for i := 0; i < len(text); i++ {
		if text[i] == '*' || text[i] == '_' {
			out.WriteByte('\\')
		}

		out.WriteByte(text[i])
	}

	return out.String()
}

// table cells additionally neutralize the pipe, which would otherwise split
// the cell in two
func escapeCell(text string) string {
	return strings.ReplaceAll(Escape(text), "|", "\\|")
}

// urls are not backslash-escaped, characters which would terminate the
// destination early are percent-encoded instead
var urlEscaper = strings.NewReplacer(
	" ", "%20",
	"(", "%28",
	")", "%29",
)

func escapeURL(url string) string {
	return urlEscaper.Replace(url)
}
