package markdown

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table returns a table built from column-major input: every argument is one
// column, its first cell the header. Cells are padded to the display width
// of the widest cell in their column, shorter columns are padded with empty
// cells.
func (b *Builder) Table(columns ...[]any) (*Node, error) {
	return b.table(nil, columns)
}

// AlignedTable is Table with a per-column alignment spec, see Alignments.
func (b *Builder) AlignedTable(spec string, columns ...[]any) (*Node, error) {
	align := Alignments(spec)
	if len(align) != len(columns) {
		return nil, fmt.Errorf("alignment spec %q describes %d columns, table has %d: %w", spec, len(align), len(columns), ErrInvalidValue)
	}

	return b.table(align, columns)
}

// TableFromRows returns a table built from row-major input: the first row
// holds the headers. Rows must be of equal length.
func (b *Builder) TableFromRows(rows ...[]any) (*Node, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("table must have at least one row: %w", ErrInvalidValue)
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("table row %d has %d cells, want %d: %w", i+1, len(row), width, ErrInvalidValue)
		}
	}

	columns := make([][]any, width)
	for i := range columns {
		columns[i] = make([]any, len(rows))
		for j, row := range rows {
			columns[i][j] = row[i]
		}
	}

	return b.table(nil, columns)
}

func (b *Builder) table(align []Alignment, columns [][]any) (*Node, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table must have at least one column: %w", ErrInvalidValue)
	}

	depth := 0
	escaped := true

	cells := make([][]string, len(columns))
	widths := make([]int, len(columns))
	for i, column := range columns {
		if len(column) == 0 {
			return nil, fmt.Errorf("table column %d has no header cell: %w", i+1, ErrInvalidValue)
		}

		if len(column) > depth {
			depth = len(column)
		}

		cells[i] = make([]string, len(column))
		for j, cell := range column {
			text, esc, err := b.resolve(TableTag, []any{cell})
			if err != nil {
				return nil, err
			}

			cells[i][j] = text
			if !esc {
				escaped = false
			}

			if w := runewidth.StringWidth(text); w > widths[i] {
				widths[i] = w
			}
		}
	}

	row := make([]string, len(columns))
	lines := make([]string, 0, depth+1)

	for r := 0; r < depth; r++ {
		for i := range columns {
			if r < len(cells[i]) {
				row[i] = cells[i][r]
			} else {
				row[i] = ""
			}
		}

		lines = append(lines, rowLine(row, widths))

		if r == 0 {
			lines = append(lines, delimiterLine(widths, align))
		}
	}

	return newNode(TableTag, strings.Join(lines, "\n"), escaped), nil
}

// TableRow renders a single table row from already formatted cells. When
// widths are given, one per cell, every cell is padded to its width.
func TableRow(cells []string, widths ...int) (string, error) {
	if len(widths) == 0 {
		widths = make([]int, len(cells))
	}

	if len(widths) != len(cells) {
		return "", fmt.Errorf("row has %d cells but %d widths: %w", len(cells), len(widths), ErrInvalidValue)
	}

	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = escapeCell(cell)
	}

	return rowLine(escaped, widths), nil
}

// TableDelimiterRow renders the row separating table headers from the body.
// Optional widths, one per column, stretch the dashes to match padded cells.
func TableDelimiterRow(columns int, widths ...int) (string, error) {
	if columns < 1 {
		return "", fmt.Errorf("delimiter row must have at least one column, got %d: %w", columns, ErrInvalidValue)
	}

	if len(widths) == 0 {
		widths = make([]int, columns)
	}

	if len(widths) != columns {
		return "", fmt.Errorf("delimiter row has %d columns but %d widths: %w", columns, len(widths), ErrInvalidValue)
	}

	return delimiterLine(widths, nil), nil
}

func rowLine(cells []string, widths []int) string {
	var row strings.Builder
	row.WriteString("|")

	for i, cell := range cells {
		row.WriteString(" ")
		row.WriteString(runewidth.FillRight(cell, widths[i]))
		row.WriteString(" |")
	}

	return row.String()
}

func delimiterLine(widths []int, align []Alignment) string {
	cells := make([]string, len(widths))
	for i, width := range widths {
		a := AlignDefault
		if i < len(align) {
			a = align[i]
		}

		cells[i] = delimiterCell(width, a)
	}

	return rowLine(cells, widths)
}

// delimiterCell draws the dashes for one column, at least three wide, with
// alignment colons replacing the outer dashes so the cell keeps its width.
func delimiterCell(width int, align Alignment) string {
	if width < 3 {
		width = 3
	}

	dashes := strings.Repeat("-", width)

	switch align {
	case AlignLeft:
		return ":" + dashes[1:]
	case AlignRight:
		return dashes[:width-1] + ":"
	case AlignCenter:
		return ":" + dashes[1:width-1] + ":"
	default:
		return dashes
	}
}
