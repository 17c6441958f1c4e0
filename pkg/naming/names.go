// Package naming turns raw table and column identifiers into display names.
package naming

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/models"
)

var (
	// Prefixes that carry no meaning for end users
	knownPrefixPattern = regexp.MustCompile(`(?i)^(tbl|dbo\.|public\.)`)

	// Lower-to-upper letter boundary (camelCase → camel Case)
	camelBoundaryPattern = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Names is a pair of case-insensitive display-name dictionaries.
// A Names value is never modified after construction; Merge returns a copy.
type Names struct {
	tables map[string]string
	fields map[string]string
}

// Default returns the built-in dictionary.
func Default() Names {
	return New(models.FriendlyNames{Tables: defaultTables, Fields: defaultFields})
}

// New builds a dictionary from the given maps. Keys are lower-cased.
func New(names models.FriendlyNames) Names {
	return Names{
		tables: copyLowered(nil, names.Tables),
		fields: copyLowered(nil, names.Fields),
	}
}

// Merge returns a new dictionary with override entries layered on top.
// Override entries win on key collision, regardless of key casing.
func (n Names) Merge(override models.FriendlyNames) Names {
	return Names{
		tables: copyLowered(n.tables, override.Tables),
		fields: copyLowered(n.fields, override.Fields),
	}
}

// Table returns the display name for a table identifier.
func (n Names) Table(raw string) string {
	return lookup(n.tables, raw)
}

// Field returns the display name for a column identifier.
func (n Names) Field(raw string) string {
	return lookup(n.fields, raw)
}

// FriendlyNames exports the dictionary contents.
func (n Names) FriendlyNames() models.FriendlyNames {
	return models.FriendlyNames{
		Tables: copyLowered(nil, n.tables),
		Fields: copyLowered(nil, n.fields),
	}
}

// Len returns the number of table and field entries.
func (n Names) Len() (tables, fields int) {
	return len(n.tables), len(n.fields)
}

func lookup(dict map[string]string, raw string) string {
	if name, ok := dict[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return name
	}
	return Humanize(raw)
}

func copyLowered(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[strings.ToLower(k)] = v
	}
	for k, v := range override {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// Humanize converts an identifier with no dictionary entry into display text:
// known prefixes are stripped, camelCase and snake_case are split into words,
// and each word gets an upper-case first letter. The rest of each word is
// left as is, so "customerID" becomes "Customer ID".
func Humanize(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}

	name = knownPrefixPattern.ReplaceAllString(name, "")
	name = camelBoundaryPattern.ReplaceAllString(name, "${1} ${2}")
	name = strings.ReplaceAll(name, "_", " ")

	// Casers keep state; one per call
	caser := cases.Upper(language.English)
	words := strings.Fields(name)
	for i, word := range words {
		words[i] = upperFirst(caser, word)
	}
	return strings.Join(words, " ")
}

// upperFirst upper-cases only the first rune of word; digits and punctuation
// later in the word do not start a new capital ("2nd", "foo-bar").
func upperFirst(caser cases.Caser, word string) string {
	_, size := utf8.DecodeRuneInString(word)
	return caser.String(word[:size]) + word[size:]
}
