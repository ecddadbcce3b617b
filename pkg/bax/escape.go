package bax

import "strings"

// escapePDFString escapes a value for inclusion in a PDF string literal.
// Backslash must be handled before the parentheses so the backslashes
// introduced for them are not escaped twice.
func escapePDFString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `(`, `\(`)
	s = strings.ReplaceAll(s, `)`, `\)`)
	return s
}

// escapeXMLText escapes a value for use as XML element text or attribute
// content. Ampersand first, for the same reason backslash goes first above.
func escapeXMLText(s string) string {
	s = strings.ReplaceAll(s, `&`, "&amp;")
	s = strings.ReplaceAll(s, `<`, "&lt;")
	s = strings.ReplaceAll(s, `>`, "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, `'`, "&apos;")
	return s
}

// escapeRichText prepares comment text for the /RC rich-content field: a
// minimal HTML escape (the fragment is not quote-delimited, so quotes stay
// as-is), then PDF-string escaping on top because the XHTML fragment is
// itself embedded in a PDF string literal.
func escapeRichText(s string) string {
	s = strings.ReplaceAll(s, `&`, "&amp;")
	s = strings.ReplaceAll(s, `<`, "&lt;")
	s = strings.ReplaceAll(s, `>`, "&gt;")
	return escapePDFString(s)
}
