package bax

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedInstant = time.Date(2025, 1, 15, 15, 30, 0, 0, time.UTC)

func newTestEncoder() *Encoder {
	return NewEncoder(Config{}, rand.New(rand.NewSource(42)), func() time.Time { return fixedInstant })
}

// archive mirrors the output XML for structural assertions.
type archive struct {
	XMLName xml.Name      `xml:"Document"`
	Version string        `xml:"Version,attr"`
	Pages   []archivePage `xml:"Page"`
}

type archivePage struct {
	Index       int                 `xml:"Index,attr"`
	Label       string              `xml:"Label,attr"`
	Width       string              `xml:"Width,attr"`
	Height      string              `xml:"Height,attr"`
	Annotations []archiveAnnotation `xml:"Annotation"`
}

type archiveAnnotation struct {
	Page         int    `xml:"Page"`
	Contents     string `xml:"Contents"`
	ModDate      string `xml:"ModDate"`
	Color        string `xml:"Color"`
	Type         string `xml:"Type"`
	ID           string `xml:"ID"`
	TypeInternal string `xml:"TypeInternal"`
	Raw          string `xml:"Raw"`
	Index        int    `xml:"Index"`
	Subject      string `xml:"Subject"`
	CreationDate string `xml:"CreationDate"`
	Author       string `xml:"Author"`
}

func parseArchive(t *testing.T, out []byte) archive {
	t.Helper()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "missing UTF-8 BOM")
	var doc archive
	require.NoError(t, xml.Unmarshal(bytes.TrimPrefix(out, []byte{0xEF, 0xBB, 0xBF}), &doc))
	return doc
}

func decodeRaw(t *testing.T, raw string) string {
	t.Helper()
	compressed, err := hex.DecodeString(raw)
	require.NoError(t, err, "Raw field must be valid hex")
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err, "Raw field must be zlib data")
	defer zr.Close()
	dict, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(dict)
}

// pdfStringValue extracts and unescapes the PDF string literal stored under
// the given dictionary key.
func pdfStringValue(t *testing.T, dict, key string) string {
	t.Helper()
	prefix := "/" + key + "("
	i := strings.Index(dict, prefix)
	require.GreaterOrEqual(t, i, 0, "missing key /%s", key)
	var b strings.Builder
	escaped := false
	for _, c := range dict[i+len(prefix):] {
		switch {
		case escaped:
			b.WriteRune(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == ')':
			return b.String()
		default:
			b.WriteRune(c)
		}
	}
	t.Fatalf("unterminated string for key /%s", key)
	return ""
}

func TestEncodeEndToEnd(t *testing.T) {
	comments := []string{"Fence not in right-of-way.", "Provide retaining wall detail."}
	out, err := newTestEncoder().Encode(comments, "KB")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	want := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<?xml version="1.0" encoding="utf-8"?>`+"\r\n")...)
	assert.True(t, bytes.HasPrefix(out, want), "output must open with BOM and CRLF-terminated XML declaration")
	assert.NotContains(t, string(out), "\n\r", "stray line endings")
	assert.Equal(t, strings.Count(string(out), "\n"), strings.Count(string(out), "\r\n"), "all line endings must be CRLF")

	doc := parseArchive(t, out)
	require.Equal(t, "1", doc.Version)
	require.Len(t, doc.Pages, 1)
	page := doc.Pages[0]
	assert.Equal(t, 0, page.Index)
	assert.Equal(t, "1", page.Label)
	assert.Equal(t, "612", page.Width)
	assert.Equal(t, "792", page.Height)

	require.Len(t, page.Annotations, 2)
	for i, annot := range page.Annotations {
		assert.Equal(t, i, annot.Index)
		assert.Equal(t, 1, annot.Page)
		assert.Equal(t, "KB", annot.Author)
		assert.Equal(t, "#008000", annot.Color)
		assert.Equal(t, "FreeText", annot.Type)
		assert.Equal(t, "Engineering", annot.Subject)
		assert.Equal(t, comments[i], annot.Contents)

		dict := decodeRaw(t, annot.Raw)
		assert.Equal(t, comments[i], pdfStringValue(t, dict, "Contents"))
		assert.Equal(t, "KB", pdfStringValue(t, dict, "T"))
		assert.Equal(t, annot.ID, pdfStringValue(t, dict, "NM"))
	}
}

func TestEncodeRoundTripSpecialCharacters(t *testing.T) {
	comment := `Fix (see \ notes) & <tags> "quoted" >done<`
	out, err := newTestEncoder().Encode([]string{comment}, "KB")
	require.NoError(t, err)

	doc := parseArchive(t, out)
	require.Len(t, doc.Pages[0].Annotations, 1)
	annot := doc.Pages[0].Annotations[0]

	// Outer XML layer round-trips via the XML parser.
	assert.Equal(t, comment, annot.Contents)

	// Inner PDF layer round-trips via PDF unescaping.
	dict := decodeRaw(t, annot.Raw)
	assert.Equal(t, comment, pdfStringValue(t, dict, "Contents"))
}

func TestEncodeNormalizesCommentLineEndings(t *testing.T) {
	comment := "Add a north arrow.\nShow scale on all sheets.\r\nResubmit."
	out, err := newTestEncoder().Encode([]string{comment}, "KB")
	require.NoError(t, err)

	// Stripping every CRLF pair must leave no lone LF or CR behind.
	stripped := bytes.ReplaceAll(out, []byte("\r\n"), nil)
	assert.NotContains(t, string(stripped), "\n")
	assert.NotContains(t, string(stripped), "\r")

	// The XML parser folds CRLF back to LF, so the comment still
	// round-trips line for line.
	doc := parseArchive(t, out)
	require.Len(t, doc.Pages[0].Annotations, 1)
	assert.Equal(t, "Add a north arrow.\nShow scale on all sheets.\nResubmit.",
		doc.Pages[0].Annotations[0].Contents)
}

func TestEncodeEmptyInput(t *testing.T) {
	enc := newTestEncoder()
	for _, comments := range [][]string{nil, {}} {
		out, err := enc.Encode(comments, "KB")
		require.NoError(t, err)
		assert.Nil(t, out, "empty input must produce no output, not an empty archive")
	}
}

func TestEncodeCountAndPagination(t *testing.T) {
	comments := make([]string, 14)
	for i := range comments {
		comments[i] = fmt.Sprintf("Comment %d", i)
	}
	out, err := newTestEncoder().Encode(comments, "")
	require.NoError(t, err)

	doc := parseArchive(t, out)
	require.Len(t, doc.Pages, 2, "13th and 14th boxes flow onto a second page")

	index := 0
	ids := map[string]bool{}
	for p, page := range doc.Pages {
		assert.Equal(t, p, page.Index)
		assert.Equal(t, fmt.Sprintf("%d", p+1), page.Label)
		for _, annot := range page.Annotations {
			assert.Equal(t, index, annot.Index, "indexes must follow input order")
			assert.Equal(t, p+1, annot.Page)
			assert.Equal(t, DefaultAuthor, annot.Author, "fallback author when reviewer unset")
			require.Len(t, annot.ID, 16)
			assert.False(t, ids[annot.ID], "duplicate annotation id")
			ids[annot.ID] = true
			index++
		}
	}
	assert.Equal(t, len(comments), index)
}

func TestEncodeTimestampConsistency(t *testing.T) {
	out, err := newTestEncoder().Encode([]string{"a", "b", "c"}, "KB")
	require.NoError(t, err)

	doc := parseArchive(t, out)
	annots := doc.Pages[0].Annotations
	require.Len(t, annots, 3)

	first := annots[0].CreationDate
	for _, annot := range annots {
		assert.Equal(t, first, annot.CreationDate, "one captured instant per export")
		assert.Equal(t, first, annot.ModDate)
	}

	isoInstant, err := time.Parse("2006-01-02T15:04:05.000000Z", first)
	require.NoError(t, err)
	assert.True(t, isoInstant.Equal(fixedInstant))

	// The PDF form carries the fixed -06'00' offset but names the same
	// instant.
	dict := decodeRaw(t, annots[0].Raw)
	pdfValue := pdfStringValue(t, dict, "M")
	require.True(t, strings.HasSuffix(pdfValue, "-06'00'"), "got %s", pdfValue)
	wall := strings.TrimSuffix(strings.TrimPrefix(pdfValue, "D:"), "-06'00'")
	pdfInstant, err := time.ParseInLocation("20060102150405", wall, time.FixedZone("", -6*3600))
	require.NoError(t, err)
	assert.True(t, pdfInstant.Equal(fixedInstant), "PDF date %s != %s", pdfInstant, fixedInstant)
	assert.Equal(t, pdfStringValue(t, dict, "CreationDate"), pdfValue)
}

func TestEncodeRawHexIsLowercase(t *testing.T) {
	out, err := newTestEncoder().Encode([]string{"check hex"}, "KB")
	require.NoError(t, err)
	raw := regexp.MustCompile(`<Raw>([0-9a-fA-F]+)</Raw>`).FindSubmatch(out)
	require.NotNil(t, raw)
	assert.Equal(t, strings.ToLower(string(raw[1])), string(raw[1]))
}

func TestEncodeDeterministicWithInjectedSources(t *testing.T) {
	comments := []string{"one", "two"}
	a, err := newTestEncoder().Encode(comments, "KB")
	require.NoError(t, err)
	b, err := newTestEncoder().Encode(comments, "KB")
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same clock, same bytes")
}
