package sql

import (
	"regexp"
	"strings"
)

// Join types
const (
	JoinInner = "inner"
	JoinLeft  = "left"
	JoinRight = "right"
	JoinOuter = "outer"
)

// identifierPattern matches an optionally quoted, optionally schema-qualified
// identifier and captures the bare name.
const identifierPattern = "(?:[\"`\\[]?\\w+[\"`\\]]?\\.)*[\"`\\[]?(\\w+)[\"`\\]]?"

var (
	fromPattern    = regexp.MustCompile(`(?i)\bfrom\s+` + identifierPattern)
	wherePattern   = regexp.MustCompile(`(?i)\bwhere\b`)
	orderByPattern = regexp.MustCompile(`(?i)\border\s+by\b`)
	limitPattern   = regexp.MustCompile(`(?i)\b(?:limit|top)\s+\(?\s*(\d+)`)
	joinPattern    = regexp.MustCompile(`(?i)\b(?:(left|right|inner|outer)\s+)?(?:outer\s+)?join\s+` + identifierPattern)

	// Keywords that end a WHERE body
	whereEndPattern = regexp.MustCompile(`(?i)\b(?:order\s+by|group\s+by|limit|offset)\b`)

	// Keywords that end an ORDER BY body
	orderByEndPattern = regexp.MustCompile(`(?i)\b(?:limit|offset)\b`)
)

// JoinClause is one JOIN target.
type JoinClause struct {
	Type  string // inner, left, right, outer
	Table string
}

// Clauses holds the raw clause bodies found in a query. Empty fields mean the
// clause was not found. Text keeps the casing of the input.
type Clauses struct {
	Table   string // Bare FROM table (no schema, no quotes)
	Where   string // Body after WHERE
	OrderBy string // Body after ORDER BY
	Limit   string // Row count from LIMIT n or TOP n
	Joins   []JoinClause
}

// ExtractClauses scans query for FROM, WHERE, ORDER BY, LIMIT/TOP and JOIN.
// Only the first statement is inspected. Keyword matching is case-insensitive.
// Never fails: anything not found is left empty.
//
// Limitations:
// - Keywords inside string literals or comments are not skipped
// - Subqueries are not understood; the first match wins
func ExtractClauses(query string) Clauses {
	query = FirstStatement(query)

	return Clauses{
		Table:   extractTable(query),
		Where:   extractBody(query, wherePattern, whereEndPattern),
		OrderBy: extractBody(query, orderByPattern, orderByEndPattern),
		Limit:   extractLimit(query),
		Joins:   extractJoins(query),
	}
}

func extractTable(query string) string {
	if matches := fromPattern.FindStringSubmatch(query); matches != nil {
		return matches[1]
	}
	return ""
}

// extractBody returns the text between the start keyword and the first end
// keyword that follows it (or the end of the query).
func extractBody(query string, start, end *regexp.Regexp) string {
	loc := start.FindStringIndex(query)
	if loc == nil {
		return ""
	}

	body := query[loc[1]:]
	if endLoc := end.FindStringIndex(body); endLoc != nil {
		body = body[:endLoc[0]]
	}

	return strings.TrimSpace(body)
}

func extractLimit(query string) string {
	if matches := limitPattern.FindStringSubmatch(query); matches != nil {
		return matches[1]
	}
	return ""
}

func extractJoins(query string) []JoinClause {
	var joins []JoinClause
	for _, matches := range joinPattern.FindAllStringSubmatch(query, -1) {
		joinType := strings.ToLower(matches[1])
		if joinType == "" {
			joinType = JoinInner
		}
		joins = append(joins, JoinClause{Type: joinType, Table: matches[2]})
	}
	return joins
}

// BareIdentifier strips quoting and any alias or schema qualifier.
// Example: `o."CreatedDate"` → CreatedDate
func BareIdentifier(ident string) string {
	ident = strings.TrimSpace(ident)
	if dotIdx := strings.LastIndex(ident, "."); dotIdx != -1 {
		ident = ident[dotIdx+1:]
	}
	return strings.Trim(ident, "`\"[]")
}
