package extract

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	numericTokenRe = regexp.MustCompile(`\d+\.?\d*`)
	valueSuffixRe  = regexp.MustCompile(`([^\d]+)$`)
)

// valueToken is a measured-value string split into its numeric reading
// and whatever trails it (typically a unit). Keeping both explicit means
// formatting never has to re-parse the original string.
type valueToken struct {
	num    float64
	ok     bool
	suffix string
}

// tokenizeValue extracts the first numeric substring of a value and its
// trailing non-numeric suffix, trimmed. ok is false when the value holds
// no number at all.
func tokenizeValue(s string) valueToken {
	tok := valueToken{}
	if m := numericTokenRe.FindString(s); m != "" {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64); err == nil {
			tok.num = f
			tok.ok = true
		}
	}
	if m := valueSuffixRe.FindStringSubmatch(s); m != nil {
		tok.suffix = strings.TrimSpace(m[1])
	}
	return tok
}

// bucketKey identifies readings considered "the same measurement": the
// same location with values rounding up to the same integer (23.4 and
// 23.6 share bucket 24; 24.9 belongs to 25).
type bucketKey struct {
	item    string
	rounded int
}

type bucket struct {
	judgment string
	values   []float64
	template Record
}

// Aggregate groups records by location, sub-buckets each group by the
// rounded numeric reading, and emits one representative record per
// bucket carrying the averaged value. Records without a numeric reading
// are dropped. Output order follows group encounter order, then bucket
// discovery order within a group.
func Aggregate(records []Record) []Record {
	groups := make(map[string][]Record)
	var groupOrder []string
	for _, rec := range records {
		if _, ok := groups[rec.Item]; !ok {
			groupOrder = append(groupOrder, rec.Item)
		}
		groups[rec.Item] = append(groups[rec.Item], rec)
	}

	var out []Record
	for _, item := range groupOrder {
		buckets := make(map[bucketKey]*bucket)
		var bucketOrder []bucketKey

		for _, rec := range groups[item] {
			tok := tokenizeValue(rec.Value)
			if !tok.ok {
				continue
			}
			key := bucketKey{item: item, rounded: int(math.Ceil(tok.num))}
			b, ok := buckets[key]
			if !ok {
				b = &bucket{judgment: rec.Judgment, template: rec}
				buckets[key] = b
				bucketOrder = append(bucketOrder, key)
			}
			b.values = append(b.values, tok.num)
		}

		for _, key := range bucketOrder {
			b := buckets[key]
			sum := 0.0
			for _, v := range b.values {
				sum += v
			}
			mean := sum / float64(len(b.values))

			rec := b.template
			rec.Value = formatRepresentative(mean, tokenizeValue(b.template.Value).suffix)
			rec.Judgment = b.judgment
			out = append(out, rec)
		}
	}
	return out
}

// formatRepresentative renders a bucket mean to one decimal, keeping the
// template's unit suffix when it had one.
func formatRepresentative(mean float64, suffix string) string {
	if suffix == "" {
		return fmt.Sprintf("%.1f", mean)
	}
	return fmt.Sprintf("%.1f %s", mean, suffix)
}
