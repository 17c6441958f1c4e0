package describe

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/models"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/sql"
)

// RelatedFromJoins builds related-data entries from the JOINs in query.
// Translate does not call this; callers that want joins in the report pass
// the result back as Options.RelatedData.
func (t *Translator) RelatedFromJoins(query string, custom models.FriendlyNames) []models.RelatedDataEntry {
	clauses := sql.ExtractClauses(query)
	if len(clauses.Joins) == 0 {
		return nil
	}

	names := t.names.Merge(custom)

	base := "record"
	if clauses.Table != "" {
		base = singularNoun(names.Table(clauses.Table))
	}

	entries := make([]models.RelatedDataEntry, 0, len(clauses.Joins))
	for _, join := range clauses.Joins {
		entity := names.Table(join.Table)
		other := singularNoun(entity)

		var description string
		switch join.Type {
		case sql.JoinLeft:
			description = fmt.Sprintf("Each %s, with its %s when one exists", base, other)
		case sql.JoinRight:
			description = fmt.Sprintf("Each %s, with its %s when one exists", other, base)
		case sql.JoinOuter:
			description = fmt.Sprintf("Every %s and %s, matched where possible", base, other)
		default:
			description = fmt.Sprintf("Each %s with its matching %s", base, other)
		}

		entries = append(entries, models.RelatedDataEntry{
			Entity:      entity,
			Description: description,
			Type:        models.RelatedDataJoin,
		})
	}

	return entries
}

// RelatedFromJoins builds related-data entries using the built-in dictionary.
func RelatedFromJoins(query string, custom models.FriendlyNames) []models.RelatedDataEntry {
	return defaultTranslator.RelatedFromJoins(query, custom)
}

// singularNoun turns a display name like "Backlog Items" into "backlog item".
func singularNoun(display string) string {
	return strings.ToLower(inflection.Singular(display))
}
