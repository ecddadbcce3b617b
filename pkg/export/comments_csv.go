package export

import (
	"bytes"
	"strings"
)

// CommentsCSV renders the ordered review-comment list as a single-column
// CSV companion to the markup archive: header literal "Comments", one row
// per comment, every field quoted, CRLF record separators. The archive and
// this CSV are built from the identical comment list, so they always carry
// the same comments in the same order.
//
// Fields are quoted unconditionally (the downstream permit system expects
// it), which encoding/csv cannot be told to do, so the quoting is applied
// directly here per RFC 4180.
func CommentsCSV(comments []string) []byte {
	if len(comments) == 0 {
		return nil
	}
	buf := &bytes.Buffer{}
	buf.WriteString(`"Comments"` + "\r\n")
	for _, comment := range comments {
		buf.WriteString(`"` + strings.ReplaceAll(comment, `"`, `""`) + `"` + "\r\n")
	}
	return buf.Bytes()
}
