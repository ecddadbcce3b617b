package bax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnnotationDictKeyOrder(t *testing.T) {
	rect := Rect{X1: 36, Y1: 648, X2: 288, Y2: 756}
	dict := buildAnnotationDict("Provide detail.", "KB", "ABCDEFGHIJKLMNOP", rect, "D:20250115093000-06'00'")

	require.True(t, strings.HasPrefix(dict, "<<"))
	require.True(t, strings.HasSuffix(dict, ">>"))

	keys := []string{"/DA(", "/DS(", "/TempBBox[", "/FillOpacity ", "/T(",
		"/CreationDate(", "/RC(", "/Subj(", "/NM(", "/Subtype/", "/Rect[",
		"/Contents(", "/F ", "/C[", "/BS<<", "/M("}
	last := -1
	for _, key := range keys {
		idx := strings.Index(dict, key)
		require.GreaterOrEqual(t, idx, 0, "missing key %s", key)
		assert.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}
}

func TestBuildAnnotationDictFixedValues(t *testing.T) {
	rect := Rect{X1: 36, Y1: 648, X2: 288, Y2: 756}
	dict := buildAnnotationDict("x", "KB", "ABCDEFGHIJKLMNOP", rect, "D:20250115093000-06'00'")

	assert.Contains(t, dict, "/DA(0 0.5019608 0 rg /Helv 12 Tf)")
	assert.Contains(t, dict, "/DS(font: Helvetica 12pt; text-align:left; margin:0pt; line-height:13.8pt; color:#000000)")
	assert.Contains(t, dict, "/TempBBox[36 648 288 756]")
	assert.Contains(t, dict, "/Rect[36 648 288 756]")
	assert.Contains(t, dict, "/FillOpacity 0.25")
	assert.Contains(t, dict, "/Subj(Engineering)")
	assert.Contains(t, dict, "/Subtype/FreeText")
	assert.Contains(t, dict, "/F 4")
	assert.Contains(t, dict, "/C[0 0.5019608 0]")
	assert.Contains(t, dict, "/BS<</W 0.75/S/S/Type/Border>>")
	assert.Contains(t, dict, "/CreationDate(D:20250115093000-06'00')")
	assert.Contains(t, dict, "/M(D:20250115093000-06'00')")
}

func TestBuildAnnotationDictEscaping(t *testing.T) {
	rect := Rect{X1: 36, Y1: 648, X2: 288, Y2: 756}
	dict := buildAnnotationDict(`Fix (swale) & <pipe>`, "KB", "ABCDEFGHIJKLMNOP", rect, "D:20250115093000-06'00'")

	// Plain-text fallback: PDF escaping only.
	assert.Contains(t, dict, `/Contents(Fix \(swale\) & <pipe>)`)
	// Rich content: HTML entities first, then PDF escaping.
	assert.Contains(t, dict, `<p>Fix \(swale\) &amp; &lt;pipe&gt;</p>`)
}
