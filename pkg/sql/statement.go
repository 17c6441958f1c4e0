// Package sql provides best-effort, regex-based inspection of SQL text.
// None of it tokenizes SQL; callers should expect correct results only for
// simple single-statement SELECT forms.
package sql

import "strings"

// FirstStatement returns the first statement in query with the terminating
// semicolon and surrounding whitespace removed. Semicolons inside quoted
// strings and identifiers do not end a statement.
func FirstStatement(query string) string {
	if idx := semicolonOutsideStrings(query); idx >= 0 {
		query = query[:idx]
	}
	return strings.TrimSpace(query)
}

// HasMultipleStatements reports whether any non-whitespace text follows the
// first statement.
func HasMultipleStatements(query string) bool {
	idx := semicolonOutsideStrings(query)
	if idx < 0 {
		return false
	}
	rest := query[idx+1:]
	return strings.TrimSpace(strings.ReplaceAll(rest, ";", "")) != ""
}

// semicolonOutsideStrings returns the byte offset of the first semicolon
// outside of string literals, or -1.
func semicolonOutsideStrings(query string) int {
	const (
		stateNormal = iota
		stateSingleQuote
		stateDoubleQuote
	)

	state := stateNormal
	prevChar := rune(0)

	for i, char := range query {
		switch state {
		case stateNormal:
			switch char {
			case ';':
				return i
			case '\'':
				state = stateSingleQuote
			case '"':
				state = stateDoubleQuote
			}
		case stateSingleQuote:
			// Doubled quotes ('') exit and immediately re-enter, which keeps us in the string
			if char == '\'' && prevChar != '\\' {
				state = stateNormal
			}
		case stateDoubleQuote:
			if char == '"' && prevChar != '\\' {
				state = stateNormal
			}
		}
		prevChar = char
	}

	return -1
}
