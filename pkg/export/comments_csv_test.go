package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsCSV(t *testing.T) {
	out := CommentsCSV([]string{
		"Fence not in right-of-way.",
		`Provide "as-built" survey.`,
	})
	lines := strings.Split(string(out), "\r\n")
	require.Len(t, lines, 4, "header, two rows, trailing terminator")
	assert.Equal(t, `"Comments"`, lines[0])
	assert.Equal(t, `"Fence not in right-of-way."`, lines[1])
	assert.Equal(t, `"Provide ""as-built"" survey."`, lines[2])
	assert.Empty(t, lines[3])
}

func TestCommentsCSVEmpty(t *testing.T) {
	assert.Nil(t, CommentsCSV(nil))
}

func TestCSVExporterQuotesOnlyWhenNeeded(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"Item", "Status"},
		Rows:    []map[string]string{{"Item": "1.1", "Status": "No"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Item,Status\r\n1.1,No\r\n", string(out))
}
