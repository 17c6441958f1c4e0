// Package describe turns SQL SELECT text into a plain-English description
// suitable for UI tooltips.
//
// Parsing is a shallow pattern-matching pipeline, not a SQL grammar. Callers
// that already know the filters, related data or calculations should pass them
// in Options; those take precedence over anything parsed from the text.
package describe

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/jsonutil"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/logging"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/models"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/naming"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/sql"
)

// Fixed output text
const (
	EmptyQuerySummary = "No query information available"
	DefaultTableName  = "records"

	FiltersHeader          = "**Filters applied:**"
	SortedByPrefix         = "**Sorted by:** "
	ShowingPrefix          = "**Showing:** "
	RelatedDataHeader      = "**Related data included:**"
	CalculatedFieldsHeader = "**Calculated fields:**"
	CalculationsHeader     = "**Calculations:**"
)

var (
	sortDirectionPattern = regexp.MustCompile(`(?i)\s+(asc|desc)$`)
	nullsOrderPattern    = regexp.MustCompile(`(?i)\s+nulls\s+(first|last)$`)
)

// Options carries caller-supplied overrides and structured hints.
// All fields are optional.
type Options struct {
	CustomNames    models.FriendlyNames
	RelatedData    []models.RelatedDataEntry
	AppliedFilters []models.AppliedFilter
	Calculations   []models.CalculationEntry
}

// Translator describes queries using a base dictionary of display names.
// It holds no per-call state and is safe for concurrent use.
type Translator struct {
	names  naming.Names
	logger *zap.Logger
}

// NewTranslator creates a Translator. A nil logger disables logging.
func NewTranslator(names naming.Names, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{
		names:  names,
		logger: logger.Named("query-describer"),
	}
}

var defaultTranslator = NewTranslator(naming.Default(), nil)

// Translate describes query using the built-in dictionary.
func Translate(query string, opts Options) *models.QueryDescription {
	return defaultTranslator.Translate(query, opts)
}

// Translate describes query. It never fails: unrecognised input yields a
// generic summary and fewer detail lines.
func (t *Translator) Translate(query string, opts Options) *models.QueryDescription {
	if strings.TrimSpace(query) == "" {
		return &models.QueryDescription{
			Summary:   EmptyQuerySummary,
			Details:   []string{},
			Technical: query,
		}
	}

	if sql.HasMultipleStatements(query) {
		t.logger.Debug("Describing first statement only",
			zap.String("query", logging.SanitizeQuery(query)))
	}

	names := t.names.Merge(opts.CustomNames)
	clauses := sql.ExtractClauses(query)

	tableName := DefaultTableName
	if clauses.Table != "" {
		tableName = names.Table(clauses.Table)
	}

	details := make([]string, 0)
	details = append(details, t.describeFilters(query, clauses.Where, opts.AppliedFilters, names)...)

	if line := describeSort(clauses.OrderBy, names); line != "" {
		details = append(details, line)
	}
	if clauses.Limit != "" {
		details = append(details, fmt.Sprintf("%sFirst %s results", ShowingPrefix, clauses.Limit))
	}

	details = append(details, describeRelatedData(opts.RelatedData)...)
	details = append(details, describeCalculations(query, opts.Calculations, names)...)

	return &models.QueryDescription{
		Summary:   "Showing " + tableName,
		Details:   details,
		Technical: query,
	}
}

// describeFilters prefers caller-supplied filters and falls back to parsing
// the WHERE body only when none of them carries a value.
func (t *Translator) describeFilters(query, where string, applied []models.AppliedFilter, names naming.Names) []string {
	lines := appliedFilterLines(applied)

	if len(lines) == 0 {
		for _, c := range splitConditions(where) {
			line, ok := interpretCondition(c, names)
			if !ok {
				t.logger.Debug("Dropping unrecognized condition",
					zap.String("condition", logging.SanitizeQuery(c.text)),
					zap.String("query", logging.SanitizeQuery(query)))
				continue
			}
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil
	}
	return append([]string{FiltersHeader}, lines...)
}

func appliedFilterLines(applied []models.AppliedFilter) []string {
	var lines []string
	for _, f := range applied {
		if f.DisplayValue != "" {
			lines = append(lines, f.DisplayValue)
			continue
		}
		value := jsonutil.ScalarString(f.Value)
		if value == "" {
			continue
		}
		label := f.Label
		if label == "" {
			label = naming.Humanize(f.Key)
		}
		lines = append(lines, fmt.Sprintf("%s = %s", label, value))
	}
	return lines
}

func describeSort(orderBy string, names naming.Names) string {
	if orderBy == "" {
		return ""
	}

	var parts []string
	for _, term := range strings.Split(orderBy, ",") {
		term = nullsOrderPattern.ReplaceAllString(strings.TrimSpace(term), "")
		if term == "" {
			continue
		}

		direction := "oldest first"
		if matches := sortDirectionPattern.FindStringSubmatch(term); matches != nil {
			if strings.EqualFold(matches[1], "desc") {
				direction = "newest first"
			}
			term = strings.TrimSpace(term[:len(term)-len(matches[0])])
		}

		parts = append(parts, fmt.Sprintf("%s (%s)", names.Field(sql.BareIdentifier(term)), direction))
	}

	if len(parts) == 0 {
		return ""
	}
	return SortedByPrefix + strings.Join(parts, ", then by ")
}

func describeRelatedData(related []models.RelatedDataEntry) []string {
	var lines []string
	for _, entry := range related {
		if entry.Entity == "" {
			continue
		}
		lines = append(lines, entry.Entity)
	}
	if len(lines) == 0 {
		return nil
	}
	return append([]string{RelatedDataHeader}, lines...)
}

// describeCalculations renders supplied calculations, or generic lines for
// aggregate calls found in the query when none are supplied.
func describeCalculations(query string, calculations []models.CalculationEntry, names naming.Names) []string {
	if len(calculations) > 0 {
		var lines []string
		for _, calc := range calculations {
			line := fmt.Sprintf("%s: %s", calc.Field, calc.Description)
			if calc.Formula != "" {
				line += fmt.Sprintf(" (%s)", calc.Formula)
			}
			if calc.Example != "" {
				line += " - Example: " + calc.Example
			}
			lines = append(lines, line)
		}
		return append([]string{CalculatedFieldsHeader}, lines...)
	}

	aggregates := sql.FindAggregates(query)

	var lines []string
	if aggregates.HasCount {
		lines = append(lines, "Counting records")
	}
	for _, call := range aggregates.Calls {
		field := names.Field(sql.BareIdentifier(call.Arg))
		switch call.Func {
		case "sum":
			lines = append(lines, "Totaling "+field)
		case "avg":
			lines = append(lines, "Averaging "+field)
		case "max":
			lines = append(lines, "Finding the highest "+field)
		case "min":
			lines = append(lines, "Finding the lowest "+field)
		}
	}

	if len(lines) == 0 {
		return nil
	}
	return append([]string{CalculationsHeader}, lines...)
}
