package extract

import (
	"strings"

	"github.com/wfzhang/report-extractor/constants"
	"github.com/wfzhang/report-extractor/internal/docx"
)

// maxHeaderRows bounds how many leading rows are treated as candidate
// header rows; reports commonly split headers across two or three rows.
const maxHeaderRows = 3

// RoleMap assigns a column index to each detected semantic role.
type RoleMap map[constants.Role]int

// Valid reports whether enough roles were found to extract data rows.
func (m RoleMap) Valid() bool {
	return len(m) >= 2
}

// MaxColumn returns the highest assigned column index, or -1.
func (m RoleMap) MaxColumn() int {
	max := -1
	for _, col := range m {
		if col > max {
			max = col
		}
	}
	return max
}

// DetectHeader scans the table's candidate header rows and assigns
// column indices to roles by keyword containment; when synonyms for one
// role appear in several header rows, the last occurrence wins. It
// returns the role map and the index of the first data row: the row
// after the last candidate row that contributed a role, so a single-row
// header does not swallow the data rows beneath it. Tables with fewer
// than two rows never qualify.
func DetectHeader(t docx.Table, keywords map[constants.Role][]string) (RoleMap, int) {
	if t.RowCount() < 2 {
		return nil, 0
	}

	headerRows := maxHeaderRows
	if t.RowCount() < headerRows {
		headerRows = t.RowCount()
	}

	roles := RoleMap{}
	lastHeaderRow := -1
	for rowIdx := 0; rowIdx < headerRows; rowIdx++ {
		for colIdx, cell := range t.Rows[rowIdx] {
			text := strings.TrimSpace(cell)
			if text == "" {
				continue
			}
			if role, ok := matchRole(text, keywords); ok {
				roles[role] = colIdx
				lastHeaderRow = rowIdx
			}
		}
	}
	return roles, lastHeaderRow + 1
}

// matchRole tests a header cell against the role keyword sets. The item
// set is consulted first, then value, then judgment; the first set with
// a hit claims the cell.
func matchRole(cellText string, keywords map[constants.Role][]string) (constants.Role, bool) {
	for _, role := range []constants.Role{constants.RoleItem, constants.RoleValue, constants.RoleJudgment} {
		for _, kw := range keywords[role] {
			if strings.Contains(cellText, kw) {
				return role, true
			}
		}
	}
	return "", false
}
