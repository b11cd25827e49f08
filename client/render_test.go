package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaiyapat/worklog/models"
)

func TestRenderEntriesOrdering(t *testing.T) {
	entries := []models.WorkLogEntry{
		{Name: "hundred", SubmitTimestamp: 100},
		{Name: "fifty", SubmitTimestamp: 50},
		{Name: "twohundred", SubmitTimestamp: 200},
	}

	out, err := RenderEntries(entries)
	require.NoError(t, err)

	posTwoHundred := strings.Index(out, "twohundred")
	posHundred := strings.Index(out, "hundred")
	posFifty := strings.Index(out, "fifty")
	require.NotEqual(t, -1, posTwoHundred)
	require.NotEqual(t, -1, posHundred)
	require.NotEqual(t, -1, posFifty)

	// Most recent submission first: 200, 100, 50
	assert.Less(t, posTwoHundred, posHundred)
	assert.Less(t, posHundred, posFifty)
}

func TestRenderEntriesEscapesFreeText(t *testing.T) {
	entries := []models.WorkLogEntry{
		{
			Name:            `<b>x</b>`,
			Details:         `"quoted" & 'single'`,
			Location:        "<script>alert(1)</script>",
			SubmitTimestamp: 1,
		},
	}

	out, err := RenderEntries(entries)
	require.NoError(t, err)

	assert.NotContains(t, out, "<b>x</b>")
	assert.Contains(t, out, "&lt;b&gt;x&lt;/b&gt;")
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, `"quoted"`)
}

func TestRenderEntriesEmptyMirror(t *testing.T) {
	out, err := RenderEntries(nil)
	require.NoError(t, err)

	assert.Contains(t, out, "No entries yet")
	assert.NotContains(t, out, `class="entry"`)
}

func TestRenderEntriesFileHandling(t *testing.T) {
	// Without a stored file: placeholder avatar, no view-file link
	out, err := RenderEntries([]models.WorkLogEntry{
		{Name: "Alice", SubmitTimestamp: 1},
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "View file")
	assert.Contains(t, out, "data:image/svg")

	// With a stored file: link present, avatar is the file itself
	out, err = RenderEntries([]models.WorkLogEntry{
		{Name: "Bob", SubmitTimestamp: 2, FileURL: "https://files.example.com/badge.png", FileName: "badge.png"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "View file")
	assert.Contains(t, out, `href="https://files.example.com/badge.png"`)
	assert.NotContains(t, out, "data:image/svg")
}
