package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/models"
)

func TestMarkdown(t *testing.T) {
	desc := &models.QueryDescription{
		Summary: "Showing Bookings",
		Details: []string{
			FiltersHeader,
			"Status equals Open",
			"Quantity is greater than 3",
			"**Sorted by:** Created Date (newest first)",
			"**Showing:** First 25 results",
		},
	}

	expected := "Showing Bookings\n" +
		"\n**Filters applied:**\n" +
		"\n- Status equals Open\n" +
		"- Quantity is greater than 3\n" +
		"\n**Sorted by:** Created Date (newest first)\n" +
		"\n**Showing:** First 25 results\n"

	assert.Equal(t, expected, Markdown(desc))
}

func TestRenderHTML(t *testing.T) {
	desc := Translate("SELECT * FROM Bookings WHERE Status = 'Open' ORDER BY CreatedDate DESC", Options{})

	html, err := RenderHTML(desc)
	require.NoError(t, err)

	assert.Contains(t, html, "<p>Showing Bookings</p>")
	assert.Contains(t, html, "<strong>Filters applied:</strong>")
	assert.Contains(t, html, "<li>Status equals Open</li>")
	assert.Contains(t, html, "<strong>Sorted by:</strong> Created Date (newest first)")
}

func TestRenderHTML_EscapesQueryText(t *testing.T) {
	opts := Options{
		AppliedFilters: []models.AppliedFilter{
			{Key: "body", Label: "Body", Value: "x", DisplayValue: "<script>alert(1)</script>"},
			{Key: "tag", Label: "Tag", Value: "*bold*"},
		},
	}

	html, err := RenderHTML(Translate("SELECT * FROM notes", opts))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "<li>&lt;script&gt;alert(1)&lt;/script&gt;</li>")
	assert.NotContains(t, html, "<em>")
	assert.Contains(t, html, "<li>Tag = *bold*</li>")
}

func TestRenderHTML_Empty(t *testing.T) {
	html, err := RenderHTML(Translate("", Options{}))
	require.NoError(t, err)

	assert.Equal(t, "<p>No query information available</p>\n", html)
}
