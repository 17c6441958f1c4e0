package sql

import (
	"regexp"
	"strings"
)

var (
	// Example: SUM(o.amount), avg(DISTINCT price)
	aggregatePattern = regexp.MustCompile(`(?i)\b(sum|avg|max|min)\s*\(\s*(?:distinct\s+)?([\w."` + "`" + `\[\]]+)\s*\)`)

	countPattern = regexp.MustCompile(`(?i)\bcount\s*\(`)
)

// Aggregate is one aggregate function call found in a query.
type Aggregate struct {
	Func string // sum, avg, max, min (lower-case)
	Arg  string // Column argument as written (may be qualified)
}

// Aggregates lists the aggregate calls in a query.
type Aggregates struct {
	HasCount bool
	Calls    []Aggregate // In order of appearance
}

// FindAggregates scans query for COUNT(...) and single-column SUM, AVG, MAX
// and MIN calls. Calls over expressions (e.g. SUM(a * b)) are not reported.
func FindAggregates(query string) Aggregates {
	query = FirstStatement(query)

	result := Aggregates{HasCount: countPattern.MatchString(query)}
	for _, matches := range aggregatePattern.FindAllStringSubmatch(query, -1) {
		result.Calls = append(result.Calls, Aggregate{
			Func: strings.ToLower(matches[1]),
			Arg:  matches[2],
		})
	}
	return result
}
