package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wfzhang/report-extractor/constants"
)

// matcher is one alternative in a prioritized matcher list: a pattern
// whose first capture group is the candidate value, plus an optional
// normalizer applied to it.
type matcher struct {
	re        *regexp.Regexp
	normalize func(string) string
}

// Alternatives are ordered most-specific first; the first pattern that
// matches wins.
var (
	reportNumberMatchers = []matcher{
		{re: regexp.MustCompile(`报告编号[：:]\s*([A-Za-z0-9\-]+)`)},
		{re: regexp.MustCompile(`受控编号[：:]\s*([A-Za-z0-9\-]+)`)},
		{re: regexp.MustCompile(`编号[：:]\s*([A-Za-z0-9\-]+)`)},
	}

	sampleNameMatchers = []matcher{
		{re: regexp.MustCompile(`样品名称[：:]\s*([^\n\r]+)`)},
		{re: regexp.MustCompile(`工程名称[：:]\s*([^\n\r]+)`)},
		{re: regexp.MustCompile(`项目名称[：:]\s*([^\n\r]+)`)},
	}

	testDateMatchers = []matcher{
		{re: regexp.MustCompile(`检测日期[：:]\s*(\d{4}年\d{1,2}月\d{1,2}日)`), normalize: normalizeCJKDate},
		{re: regexp.MustCompile(`检测日期[：:]\s*(\d{4}-\d{1,2}-\d{1,2})`), normalize: normalizeDashedDate},
		{re: regexp.MustCompile(`日期[：:]\s*(\d{4}年\d{1,2}月\d{1,2}日)`), normalize: normalizeCJKDate},
		{re: regexp.MustCompile(`Date[：:]\s*(\d{4}-\d{1,2}-\d{1,2})`), normalize: normalizeDashedDate},
		{re: regexp.MustCompile(`(\d{4}年\d{1,2}月\d{1,2}日)`), normalize: normalizeCJKDate},
		{re: regexp.MustCompile(`(\d{4}-\d{1,2}-\d{1,2})`), normalize: normalizeDashedDate},
	}

	cjkDateRe    = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
	dashedDateRe = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
)

// firstMatch tries the matchers in order and returns the normalized
// capture of the first one that hits.
func firstMatch(matchers []matcher, text string) (string, bool) {
	for _, m := range matchers {
		groups := m.re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		v := groups[1]
		if m.normalize != nil {
			v = m.normalize(v)
		}
		return v, true
	}
	return "", false
}

// ReportNumber returns the document's report number, preferring the
// explicit 报告编号 label over 受控编号 and the bare 编号. Empty when no
// label is present.
func ReportNumber(text string) string {
	v, _ := firstMatch(reportNumberMatchers, text)
	return strings.TrimSpace(v)
}

// SampleName returns the sample (or project) name, or "".
func SampleName(text string) string {
	v, _ := firstMatch(sampleNameMatchers, text)
	return strings.TrimSpace(v)
}

// TestDate returns the test date normalized to YYYY-MM-DD, falling back
// to any bare date found in the text, or the 未知 sentinel.
func TestDate(text string) string {
	if v, ok := firstMatch(testDateMatchers, text); ok {
		return v
	}
	return constants.UnknownDate
}

// ExtractFields pulls all scalar metadata from the full document text.
func ExtractFields(text string) Fields {
	return Fields{
		ReportNumber: ReportNumber(text),
		SampleName:   SampleName(text),
		TestDate:     TestDate(text),
	}
}

func normalizeCJKDate(s string) string {
	groups := cjkDateRe.FindStringSubmatch(s)
	if groups == nil {
		return s
	}
	return fmt.Sprintf("%s-%s-%s", groups[1], pad2(groups[2]), pad2(groups[3]))
}

func normalizeDashedDate(s string) string {
	groups := dashedDateRe.FindStringSubmatch(s)
	if groups == nil {
		return s
	}
	return fmt.Sprintf("%s-%s-%s", groups[1], pad2(groups[2]), pad2(groups[3]))
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
