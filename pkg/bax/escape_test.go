package bax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapePDFString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Provide retaining wall detail.", "Provide retaining wall detail."},
		{"parens", "(see note)", `\(see note\)`},
		{"backslash", `path\to`, `path\\to`},
		{"backslash before paren", `a\(b`, `a\\\(b`},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, escapePDFString(tc.in))
		})
	}
}

func TestEscapeXMLText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Fence not in right-of-way.", "Fence not in right-of-way."},
		{"amp first", "R&D <dept>", "R&amp;D &lt;dept&gt;"},
		{"quotes", `say "hi" & 'bye'`, "say &quot;hi&quot; &amp; &apos;bye&apos;"},
		{"already escaped stays literal", "&amp;", "&amp;amp;"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeXMLText(tc.in))
		})
	}
}

func TestEscapeRichText(t *testing.T) {
	// HTML escape first, then PDF escape on top: quotes survive, angle
	// brackets become entities, parens pick up backslashes.
	assert.Equal(t, `&lt;b&gt; \(max\) &amp; "ok"`, escapeRichText(`<b> (max) & "ok"`))
	assert.Equal(t, `\\`, escapeRichText(`\`))
}
