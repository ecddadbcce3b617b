// Package bax encodes review comments into a Bluebeam Markup Archive: an XML
// document listing FreeText PDF annotations, where each annotation's Raw
// field is a zlib-compressed, hex-encoded PDF annotation dictionary carrying
// the full visual styling. The output is importable by the Bluebeam desktop
// tool, so the byte layout (UTF-8 BOM, CRLF line endings, field order) is
// fixed.
package bax

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const (
	// DefaultAuthor is used when no reviewer is set on the export.
	DefaultAuthor = "Engineering Review"

	// DefaultUTCOffsetMinutes is the fixed UTC offset rendered into PDF
	// dates. Archives produced here carry -06'00' unless a deployment in
	// another timezone sets its own via Config.
	DefaultUTCOffsetMinutes = -360

	annotColor        = "#008000"
	annotType         = "FreeText"
	annotTypeInternal = "FreeText"

	isoLayout = "2006-01-02T15:04:05.000000Z"
	crlf      = "\r\n"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Config carries the encoder-wide fixed values.
type Config struct {
	// AuthorFallback replaces an empty author string. Defaults to
	// DefaultAuthor.
	AuthorFallback string
	// UTCOffsetMinutes is the fixed offset for the PDF date suffix. Zero
	// means "use DefaultUTCOffsetMinutes"; a genuine +0000 is never emitted.
	UTCOffsetMinutes int
}

// Encoder turns an ordered comment list into a markup archive byte stream.
// It is a pure function of its inputs plus the injected random source and
// clock; concurrent use is safe only with a concurrency-safe RandSource.
type Encoder struct {
	cfg Config
	ids *IDGenerator
	now func() time.Time
}

// NewEncoder constructs an encoder. A nil src falls back to a time-seeded
// math/rand source; a nil now falls back to time.Now. Tests inject both for
// determinism.
func NewEncoder(cfg Config, src RandSource, now func() time.Time) *Encoder {
	if cfg.AuthorFallback == "" {
		cfg.AuthorFallback = DefaultAuthor
	}
	if cfg.UTCOffsetMinutes == 0 {
		cfg.UTCOffsetMinutes = DefaultUTCOffsetMinutes
	}
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Encoder{cfg: cfg, ids: NewIDGenerator(src), now: now}
}

// Encode produces the archive for the given comments in order. An empty
// comment list yields (nil, nil): nothing to export, never a zero-annotation
// archive. Every comment in a non-empty input is represented by exactly one
// annotation.
func (e *Encoder) Encode(comments []string, author string) ([]byte, error) {
	if len(comments) == 0 {
		return nil, nil
	}
	if author == "" {
		author = e.cfg.AuthorFallback
	}

	// One captured instant per export; annotations never drift within a
	// single call.
	instant := e.now().UTC()
	isoDate := instant.Format(isoLayout)
	pdfDate := formatPDFDate(instant, e.cfg.UTCOffsetMinutes)

	placements := layoutBoxes(len(comments))
	lastPage := placements[len(placements)-1].Page

	var doc lineWriter
	doc.line(0, `<?xml version="1.0" encoding="utf-8"?>`)
	doc.line(0, `<Document Version="1">`)

	next := 0
	for page := 0; page <= lastPage; page++ {
		doc.line(1, fmt.Sprintf(`<Page Index="%d" Label="%d" Width="%s" Height="%s">`,
			page, page+1, formatPoints(PageWidth), formatPoints(PageHeight)))

		for ; next < len(comments) && placements[next].Page == page; next++ {
			id := e.ids.Next()
			raw, err := compressDict(buildAnnotationDict(
				comments[next], author, id, placements[next].Rect, pdfDate))
			if err != nil {
				return nil, fmt.Errorf("compress annotation %d: %w", next, err)
			}

			doc.line(2, "<Annotation>")
			doc.line(3, "<Page>"+strconv.Itoa(page+1)+"</Page>")
			doc.line(3, "<Contents>"+escapeXMLText(comments[next])+"</Contents>")
			doc.line(3, "<ModDate>"+isoDate+"</ModDate>")
			doc.line(3, "<Color>"+annotColor+"</Color>")
			doc.line(3, "<Type>"+annotType+"</Type>")
			doc.line(3, "<ID>"+id+"</ID>")
			doc.line(3, "<TypeInternal>"+annotTypeInternal+"</TypeInternal>")
			doc.line(3, "<Raw>"+raw+"</Raw>")
			doc.line(3, "<Index>"+strconv.Itoa(next)+"</Index>")
			doc.line(3, "<Subject>"+dictSubject+"</Subject>")
			doc.line(3, "<CreationDate>"+isoDate+"</CreationDate>")
			doc.line(3, "<Author>"+escapeXMLText(author)+"</Author>")
			doc.line(2, "</Annotation>")
		}

		doc.line(1, "</Page>")
	}
	doc.line(0, "</Document>")

	body := normalizeCRLF(doc.buf.Bytes())
	out := make([]byte, 0, len(utf8BOM)+len(body))
	out = append(out, utf8BOM...)
	out = append(out, body...)
	return out, nil
}

// normalizeCRLF rewrites every line ending in the assembled document as
// CRLF. Comment text is free-form and may carry bare LFs; the archive
// contract is CRLF throughout, so collapse first and then re-expand.
func normalizeCRLF(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(b, []byte("\n"), []byte("\r\n"))
}

// compressDict runs the UTF-8 dictionary text through zlib and hex-encodes
// the result (lowercase). Compression faults propagate; a corrupt archive
// must never be produced silently.
func compressDict(dict string) (string, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(dict)); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// formatPDFDate renders the instant as D:YYYYMMDDHHMMSS with the fixed
// offset suffix, wall time expressed in that offset's zone so both date
// forms name the same instant.
func formatPDFDate(t time.Time, offsetMinutes int) string {
	local := t.In(time.FixedZone("", offsetMinutes*60))
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("D:%s%s%02d'%02d'", local.Format("20060102150405"), sign, offsetMinutes/60, offsetMinutes%60)
}

// lineWriter accumulates CRLF-terminated, two-space indented lines.
type lineWriter struct {
	buf bytes.Buffer
}

func (w *lineWriter) line(depth int, s string) {
	for i := 0; i < depth; i++ {
		w.buf.WriteString("  ")
	}
	w.buf.WriteString(s)
	w.buf.WriteString(crlf)
}
