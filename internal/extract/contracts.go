// Package extract implements the record extraction engine: scalar field
// matching over document text, header-role detection over table rows,
// row walking with merged-cell carry-forward, location bucketing with
// value averaging, and the text-pattern fallback.
package extract

import (
	"strings"

	"github.com/wfzhang/report-extractor/constants"
)

// Record is one raw inspection item pulled from a table row or a text
// pattern: where it was measured, what was read, and the verdict.
type Record struct {
	Item     string
	Value    string
	Judgment string
}

// Valid reports whether the record carries real data: all three fields
// non-blank, none equal to the "nothing further" placeholder, and the
// item not prefixed by it.
func (r Record) Valid() bool {
	item := strings.TrimSpace(r.Item)
	if item == "" || item == constants.BlankBelowPlaceholder || strings.HasPrefix(item, constants.BlankBelowPrefix) {
		return false
	}
	if v := strings.TrimSpace(r.Value); v == "" || v == constants.BlankBelowPlaceholder {
		return false
	}
	if j := strings.TrimSpace(r.Judgment); j == "" || j == constants.BlankBelowPlaceholder {
		return false
	}
	return true
}

// Fields is the scalar metadata extracted once per document.
type Fields struct {
	ReportNumber string
	SampleName   string
	TestDate     string
}

// DetectionRecord is the output unit: one row of the summary workbook.
type DetectionRecord struct {
	ReportNumber  string
	SampleName    string
	TestItem      string
	MeasuredValue string
	Judgment      string
	TestDate      string
}
