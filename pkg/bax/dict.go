package bax

import (
	"fmt"
	"strings"
)

// Fixed visual styling shared by every exported annotation.
const (
	dictDefaultAppearance = "0 0.5019608 0 rg /Helv 12 Tf"
	dictDefaultStyle      = "font: Helvetica 12pt; text-align:left; margin:0pt; line-height:13.8pt; color:#000000"
	dictBorderStyle       = "<</W 0.75/S/S/Type/Border>>"
	dictFillOpacity       = "0.25"
	dictPrintFlag         = "4"
	dictStrokeColor       = "0 0.5019608 0"
	dictSubject           = "Engineering"

	richContentTemplate = `<?xml version="1.0"?><body xmlns="http://www.w3.org/1999/xhtml" xmlns:xfa="http://www.xfa.org/schema/xfa-data/1.0/" xfa:APIVersion="Acrobat:18.0.0" style="font-size:12.0pt;text-align:left;color:#000000;font-family:Helvetica"><p>%s</p></body>`
)

// annotDict serializes a PDF annotation dictionary with a fixed key order.
// The order carries no meaning for a PDF reader but is pinned so output is
// reproducible byte for byte.
type annotDict struct {
	sb strings.Builder
}

func newAnnotDict() *annotDict {
	d := &annotDict{}
	d.sb.WriteString("<<")
	return d
}

// str writes a PDF string literal, escaping the value.
func (d *annotDict) str(key, value string) {
	d.sb.WriteString("/" + key + "(" + escapePDFString(value) + ")")
}

// rawStr writes a PDF string literal whose value is already escaped.
func (d *annotDict) rawStr(key, value string) {
	d.sb.WriteString("/" + key + "(" + value + ")")
}

// name writes a PDF name value.
func (d *annotDict) name(key, value string) {
	d.sb.WriteString("/" + key + "/" + value)
}

// num writes a bare numeric token.
func (d *annotDict) num(key, value string) {
	d.sb.WriteString("/" + key + " " + value)
}

// arr writes a numeric array.
func (d *annotDict) arr(key string, values []float64) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatPoints(v)
	}
	d.sb.WriteString("/" + key + "[" + strings.Join(parts, " ") + "]")
}

// token writes a preformatted value such as an inline dictionary.
func (d *annotDict) token(key, value string) {
	d.sb.WriteString("/" + key + value)
}

func (d *annotDict) String() string {
	return d.sb.String() + ">>"
}

// buildAnnotationDict assembles the FreeText annotation dictionary for one
// comment. pdfDate is the export instant in PDF date form; it serves as both
// creation and modification date.
func buildAnnotationDict(comment, author, id string, rect Rect, pdfDate string) string {
	d := newAnnotDict()
	d.str("DA", dictDefaultAppearance)
	d.str("DS", dictDefaultStyle)
	d.arr("TempBBox", rect.array())
	d.num("FillOpacity", dictFillOpacity)
	d.str("T", author)
	d.str("CreationDate", pdfDate)
	d.rawStr("RC", fmt.Sprintf(richContentTemplate, escapeRichText(comment)))
	d.str("Subj", dictSubject)
	d.str("NM", id)
	d.name("Subtype", "FreeText")
	d.arr("Rect", rect.array())
	d.str("Contents", comment)
	d.num("F", dictPrintFlag)
	d.token("C", "["+dictStrokeColor+"]")
	d.token("BS", dictBorderStyle)
	d.str("M", pdfDate)
	return d.String()
}
