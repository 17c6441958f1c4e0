package describe

import (
	"regexp"
	"strings"
	"time"
)

const (
	boundParameterText   = "specified value"
	negativeInfinityText = "the beginning of time"
	positiveInfinityText = "the end of time"

	displayDateLayout = "January 2, 2006"
)

var (
	castPrefixPattern = regexp.MustCompile(`(?i)^timestamptz\s*`)
	castSuffixPattern = regexp.MustCompile(`(?i)::\s*[a-z_][\w ]*$`)

	// @name, :name and $1 placeholders. Requires a boundary before the marker so
	// e-mail addresses and clock times are left alone.
	placeholderPattern = regexp.MustCompile(`(^|[\s(,=])(?:@\w+|:[A-Za-z_]\w*|\$\d+)`)
	templatePattern    = regexp.MustCompile(`\{\{\s*\w+\s*\}\}`)

	// Whole-value only; "Infinity Corp" is data.
	negativeInfinityPattern = regexp.MustCompile(`(?i)^-infinity$`)
	positiveInfinityPattern = regexp.MustCompile(`(?i)^infinity$`)

	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// valueAfter returns the cleaned text following the first occurrence of op.
func valueAfter(fragment, op string) string {
	idx := strings.Index(fragment, op)
	if idx == -1 {
		return ""
	}
	return cleanValue(fragment[idx+len(op):])
}

// cleanValue strips casts and quotes and swaps placeholders and infinity
// markers for readable text.
func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	value = castPrefixPattern.ReplaceAllString(value, "")
	value = castSuffixPattern.ReplaceAllString(value, "")
	value = strings.TrimSpace(value)
	value = strings.Trim(value, "'\"`")

	value = templatePattern.ReplaceAllString(value, boundParameterText)
	value = placeholderPattern.ReplaceAllString(value, "${1}"+boundParameterText)

	value = negativeInfinityPattern.ReplaceAllString(value, negativeInfinityText)
	value = positiveInfinityPattern.ReplaceAllString(value, positiveInfinityText)

	return value
}

// formatDate renders a value starting with YYYY-MM-DD as "January 2, 2006".
// Anything else, including impossible dates, is returned unchanged.
func formatDate(value string) string {
	if !isoDatePattern.MatchString(value) {
		return value
	}
	date, err := time.Parse("2006-01-02", value[:10])
	if err != nil {
		return value
	}
	return date.Format(displayDateLayout)
}
