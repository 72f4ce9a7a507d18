package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Fallback patterns, applied when no table in the document yields data.
var (
	// label：value（judgment）
	labeledResultRe = regexp.MustCompile(`([^\n:：]+)[：:]\s*([^\n（(]+)[（(]([^\n）)]+)[）)]`)

	// One core-strength result anywhere between the 芯样抗压强度 and 结论
	// markers; spans line breaks.
	coreStrengthRe = regexp.MustCompile(`(?s)芯样抗压强度.*?结论.*?(\d+\.\d+)\s*MPa.*?(合格|不合格)`)

	// Tabulated core-strength results rendered as running text: serial
	// number, location, strength grade (skipped), value, conclusion.
	coreStrengthTableRe = regexp.MustCompile(`(?s)序号.*?检测部位.*?强度等级.*?芯样抗压强度.*?结论.*?(\d+).*?(\S+).*?C\d+.*?(\d+\.\d+)\s*MPa.*?(合格|不合格)`)
)

// coreStrengthItem is the fixed item label for fallback strength records.
const coreStrengthItem = "混凝土抗压强度"

// FallbackExtract mines the full document text with three passes and
// returns their matches appended in pass order. Only the generic pass is
// subject to the validity filter; the strength passes construct their
// fields and cannot produce blanks.
func FallbackExtract(text string) []Record {
	var records []Record

	for _, m := range labeledResultRe.FindAllStringSubmatch(text, -1) {
		rec := Record{
			Item:     strings.TrimSpace(m[1]),
			Value:    strings.TrimSpace(m[2]),
			Judgment: strings.TrimSpace(m[3]),
		}
		if rec.Valid() {
			records = append(records, rec)
		}
	}

	for _, m := range coreStrengthRe.FindAllStringSubmatch(text, -1) {
		records = append(records, Record{
			Item:     coreStrengthItem,
			Value:    m[1] + " MPa",
			Judgment: m[2],
		})
	}

	for _, m := range coreStrengthTableRe.FindAllStringSubmatch(text, -1) {
		records = append(records, Record{
			Item:     fmt.Sprintf("%s(部位%s)", coreStrengthItem, m[1]),
			Value:    m[3] + " MPa",
			Judgment: m[4],
		})
	}

	return records
}
