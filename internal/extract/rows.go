package extract

import (
	"strings"

	"github.com/wfzhang/report-extractor/constants"
	"github.com/wfzhang/report-extractor/internal/docx"
)

// rowState is the carried state threaded through the data-row walk.
// Merged cells render as blank continuation cells, so a blank item cell
// inherits the current location and a blank judgment cell inherits the
// judgment of the most recently accepted record.
type rowState struct {
	currentItem string
}

// ExtractRows walks the data rows below the detected header and returns
// the valid raw records in row order. start is the index of the first
// data row; roles must already be validated by the caller.
func ExtractRows(t docx.Table, roles RoleMap, start int) []Record {
	maxCol := roles.MaxColumn()
	var records []Record
	var state rowState

	offset := 0
	for rowIdx := start; rowIdx < t.RowCount(); rowIdx++ {
		row := t.Rows[rowIdx]
		if len(row) <= maxCol {
			continue
		}

		var rec Record
		if col, ok := roles[constants.RoleItem]; ok {
			text := strings.TrimSpace(row[col])
			if text == "" && offset > 0 {
				text = state.currentItem
			} else {
				state.currentItem = text
			}
			rec.Item = text
		}
		if col, ok := roles[constants.RoleValue]; ok {
			// Never carried forward: a blank reading invalidates the row.
			rec.Value = strings.TrimSpace(row[col])
		}
		if col, ok := roles[constants.RoleJudgment]; ok {
			text := strings.TrimSpace(row[col])
			if text == "" && offset > 0 && len(records) > 0 {
				text = records[len(records)-1].Judgment
			}
			rec.Judgment = text
		}
		offset++

		// State was already updated from the row's non-blank cells, so a
		// row discarded here does not break carry-forward for later rows.
		if rec.Valid() {
			records = append(records, rec)
		}
	}
	return records
}
