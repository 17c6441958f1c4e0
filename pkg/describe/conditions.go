package describe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/naming"
)

// fallbackFieldName is shown verbatim when no column can be parsed.
const fallbackFieldName = "field"

var (
	// Top-level AND/OR. Not parenthesis-aware: grouped expressions and
	// BETWEEN x AND y are split too.
	connectorPattern = regexp.MustCompile(`(?i)\s+(and|or)\s+`)

	// Leading identifier, optionally alias-qualified: o.CreatedDate
	fieldPattern = regexp.MustCompile("^[\\s(]*[\"`\\[]?(\\w+)[\"`\\]]?(?:\\s*\\.\\s*[\"`\\[]?(\\w+)[\"`\\]]?)?")

	identifierPattern = regexp.MustCompile(`\w+`)

	likePattern    = regexp.MustCompile(`\bi?like\b`)
	inListPattern  = regexp.MustCompile(`\bin\s*\(`)
	betweenPattern = regexp.MustCompile(`\bbetween\b`)
)

// condition is one WHERE fragment. lower and upper are set when two adjacent
// fragments were merged into a date range.
type condition struct {
	text  string
	lower string
	upper string
}

// splitConditions splits a WHERE body into fragments and merges adjacent
// "f >= a AND f <= b" pairs on the same field into one range condition.
func splitConditions(where string) []condition {
	where = strings.TrimSpace(where)
	if where == "" {
		return nil
	}

	var (
		fragments  []string
		connectors []string
		start      int
	)
	for _, loc := range connectorPattern.FindAllStringSubmatchIndex(where, -1) {
		fragments = append(fragments, where[start:loc[0]])
		connectors = append(connectors, strings.ToLower(where[loc[2]:loc[3]]))
		start = loc[1]
	}
	fragments = append(fragments, where[start:])

	var conditions []condition
	for i := 0; i < len(fragments); i++ {
		text := trimUnbalancedParens(strings.TrimSpace(fragments[i]))
		if text == "" {
			continue
		}

		if i+1 < len(fragments) && connectors[i] == "and" {
			next := trimUnbalancedParens(strings.TrimSpace(fragments[i+1]))
			if merged, ok := mergeRange(text, next); ok {
				conditions = append(conditions, merged)
				i++
				continue
			}
		}

		conditions = append(conditions, condition{text: text})
	}

	return conditions
}

// mergeRange combines a lower-bound and an upper-bound fragment on the same
// field, in either order.
func mergeRange(first, second string) (condition, bool) {
	lowerText, upperText := first, second
	if isUpperBound(first) && isLowerBound(second) {
		lowerText, upperText = second, first
	}
	if !isLowerBound(lowerText) || !isUpperBound(upperText) {
		return condition{}, false
	}
	if !strings.EqualFold(extractField(lowerText), extractField(upperText)) {
		return condition{}, false
	}

	return condition{
		text:  first + " and " + second,
		lower: valueAfter(lowerText, ">="),
		upper: valueAfter(upperText, "<="),
	}, true
}

func isLowerBound(text string) bool {
	return strings.Contains(text, ">=") && !strings.Contains(text, "<=")
}

func isUpperBound(text string) bool {
	return strings.Contains(text, "<=") && !strings.Contains(text, ">=")
}

// trimUnbalancedParens removes grouping parentheses left over from splitting
// "(a = 1 or b = 2)" into "(a = 1" and "b = 2)".
func trimUnbalancedParens(text string) string {
	for strings.HasPrefix(text, "(") && strings.Count(text, "(") > strings.Count(text, ")") {
		text = strings.TrimSpace(text[1:])
	}
	for strings.HasSuffix(text, ")") && strings.Count(text, ")") > strings.Count(text, "(") {
		text = strings.TrimSpace(text[:len(text)-1])
	}
	return text
}

// interpretCondition renders one fragment as a sentence. Rules are tried in
// order and the first match wins; ok is false when no rule matches.
func interpretCondition(c condition, names naming.Names) (string, bool) {
	text := c.text
	lower := strings.ToLower(text)
	field := fallbackFieldName
	if raw := extractField(text); raw != "" {
		field = names.Field(raw)
	}

	switch {
	case strings.Contains(text, ">=") && strings.Contains(text, "<="):
		if c.lower != "" && c.upper != "" {
			return fmt.Sprintf("%s is within a specific date range (from %s to %s)",
				field, formatDate(c.lower), formatDate(c.upper)), true
		}
		return fmt.Sprintf("%s is within a specific date range", field), true

	case strings.Contains(text, ">="):
		return fmt.Sprintf("%s is on or after %s", field, formatDate(valueAfter(text, ">="))), true

	case strings.Contains(text, "<="):
		return fmt.Sprintf("%s is on or before %s", field, formatDate(valueAfter(text, "<="))), true

	case strings.Contains(text, ">"):
		return fmt.Sprintf("%s is greater than %s", field, valueAfter(text, ">")), true

	case strings.Contains(text, "<"):
		return fmt.Sprintf("%s is less than %s", field, valueAfter(text, "<")), true

	case strings.Contains(text, "="):
		value := valueAfter(text, "=")
		if strings.EqualFold(value, "null") {
			return fmt.Sprintf("%s is empty", field), true
		}
		return fmt.Sprintf("%s equals %s", field, formatDate(value)), true

	case likePattern.MatchString(lower):
		// Never surface the raw pattern
		return fmt.Sprintf("%s contains specific text", field), true

	case inListPattern.MatchString(lower):
		return fmt.Sprintf("%s is one of several values", field), true

	case strings.Contains(lower, "is null"):
		return fmt.Sprintf("%s is empty", field), true

	case strings.Contains(lower, "is not null"):
		return fmt.Sprintf("%s has a value", field), true

	case betweenPattern.MatchString(lower):
		return fmt.Sprintf("%s is within a range", field), true
	}

	return "", false
}

// extractField returns the column a fragment compares, without its alias,
// or "" when the fragment does not start with an identifier.
// A one-letter leading token is treated as an alias and the identifier after
// the next '.' is used instead.
func extractField(fragment string) string {
	matches := fieldPattern.FindStringSubmatch(fragment)
	if matches == nil {
		return ""
	}
	if matches[2] != "" {
		return matches[2]
	}

	name := matches[1]
	if len(name) == 1 {
		if dotIdx := strings.Index(fragment, "."); dotIdx != -1 {
			if ident := identifierPattern.FindString(fragment[dotIdx+1:]); ident != "" {
				return ident
			}
		}
	}
	return name
}
