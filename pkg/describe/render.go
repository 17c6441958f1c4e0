package describe

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/models"
)

var (
	// "**Label:** rest"
	labeledLinePattern = regexp.MustCompile(`^\*\*([^*]+)\*\*\s*(.*)$`)

	markdownSpecialPattern = regexp.MustCompile("([\\\\`*_\\[\\]<>#|~!])")
	orderedListPattern     = regexp.MustCompile(`^(\d+)([.)])`)
)

var markdown = goldmark.New()

// Markdown renders a description as markdown: the summary as a paragraph,
// labeled lines as bold paragraphs, and plain lines as bullet lists.
// Text that came from the query is escaped.
func Markdown(desc *models.QueryDescription) string {
	var b strings.Builder
	b.WriteString(escapeMarkdown(desc.Summary))
	b.WriteString("\n")

	inList := false
	for _, line := range desc.Details {
		if matches := labeledLinePattern.FindStringSubmatch(line); matches != nil {
			b.WriteString("\n")
			fmt.Fprintf(&b, "**%s**", escapeMarkdown(matches[1]))
			if matches[2] != "" {
				b.WriteString(" " + escapeMarkdown(matches[2]))
			}
			b.WriteString("\n")
			inList = false
			continue
		}

		if !inList {
			b.WriteString("\n")
			inList = true
		}
		b.WriteString("- " + escapeMarkdown(line) + "\n")
	}

	return b.String()
}

// RenderHTML renders a description as an HTML fragment. Raw HTML in the
// input is escaped, never passed through.
func RenderHTML(desc *models.QueryDescription) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(desc)), &buf); err != nil {
		return "", fmt.Errorf("failed to render description: %w", err)
	}
	return buf.String(), nil
}

func escapeMarkdown(text string) string {
	text = markdownSpecialPattern.ReplaceAllString(text, `\$1`)
	return orderedListPattern.ReplaceAllString(text, `$1\$2`)
}
