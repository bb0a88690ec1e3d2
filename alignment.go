package markdown

type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Alignments parses a column alignment spec, one letter per column: l, c or
// r, with a dash for a column left at the renderer default. Pipes and spaces
// carry no meaning and are skipped, so "lcr", "l c r" and "l|c|r" all
// describe the same three columns.
func Alignments(raw string) (spec []Alignment) {
	for _, char := range raw {
		switch char {
		case 'l':
			spec = append(spec, AlignLeft)
		case 'c':
			spec = append(spec, AlignCenter)
		case 'r':
			spec = append(spec, AlignRight)
		case '-':
			spec = append(spec, AlignDefault)
		}
	}

	return
}
