package docx

import "strings"

// Document is the abstract tree the extraction pipeline consumes: body
// paragraphs in order, plus tables in order. Cell and paragraph text is
// already trimmed by the loader.
type Document struct {
	Paragraphs []string
	Tables     []Table
}

// Text returns the full paragraph text joined with newlines.
func (d *Document) Text() string {
	return strings.Join(d.Paragraphs, "\n")
}

// Table is an ordered grid of trimmed cell text. Rows may have uneven
// lengths; merged cells surface as blank continuation cells.
type Table struct {
	Rows [][]string
}

// RowCount returns the number of rows.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// CellText returns the trimmed text of the cell at (row, col), or the
// empty string when the position is out of bounds.
func (t Table) CellText(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}
